package provider

import "strings"

// Outcome is the processor-facing classification of a gateway state name.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
	OutcomePending Outcome = "pending"
	OutcomeUnknown Outcome = "unknown"
)

// StateMapper translates one gateway's state vocabulary into an Outcome.
type StateMapper interface {
	Name() string
	Classify(state string) Outcome
}

// Registry selects the mapper for a provider. One processor, pluggable
// per-provider strategies; unknown providers fall back to the generic map.
type Registry struct {
	mappers  map[string]StateMapper
	fallback StateMapper
}

func NewRegistry() *Registry {
	generic := &tableMapper{
		name: "generic",
		success: []string{
			"COMPLETED", "SUCCESS", "SUCCEEDED", "PAID", "CAPTURED", "APPROVED",
		},
		failure: []string{
			"FAILED", "FAILURE", "CANCELED", "CANCELLED", "DECLINED", "REJECTED",
			"EXPIRED", "CHARGEBACK",
		},
		pending: []string{
			"PENDING", "CREATED", "NEW", "PROCESSING", "WAITING_FOR_CONFIRMATION",
			"AUTHORIZED",
		},
	}

	r := &Registry{
		mappers:  make(map[string]StateMapper),
		fallback: generic,
	}

	r.Register(generic)
	r.Register(&tableMapper{
		name:    "payu",
		success: []string{"COMPLETED"},
		failure: []string{"CANCELED", "REJECTED", "EXPIRED"},
		pending: []string{"NEW", "PENDING", "WAITING_FOR_CONFIRMATION"},
	})
	r.Register(&tableMapper{
		name:    "przelewy24",
		success: []string{"SUCCESS", "VERIFIED"},
		failure: []string{"ERROR", "CANCELLED", "RETURNED"},
		pending: []string{"REGISTERED", "PENDING"},
	})

	return r
}

func (r *Registry) Register(m StateMapper) {
	r.mappers[strings.ToLower(m.Name())] = m
}

func (r *Registry) Mapper(provider string) StateMapper {
	if m, ok := r.mappers[strings.ToLower(provider)]; ok {
		return m
	}
	return r.fallback
}

func (r *Registry) Classify(provider, state string) Outcome {
	return r.Mapper(provider).Classify(state)
}

type tableMapper struct {
	name    string
	success []string
	failure []string
	pending []string
}

func (m *tableMapper) Name() string {
	return m.name
}

func (m *tableMapper) Classify(state string) Outcome {
	state = strings.ToUpper(strings.TrimSpace(state))
	switch {
	case contains(m.success, state):
		return OutcomeSuccess
	case contains(m.failure, state):
		return OutcomeFailure
	case contains(m.pending, state):
		return OutcomePending
	default:
		return OutcomeUnknown
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
