package jurisdiction

import (
	"fmt"
	"sort"
	"sync"
)

// UnknownCodeError reports a jurisdiction code not present in the registry.
type UnknownCodeError struct {
	Code string
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("unknown jurisdiction code %q", e.Code)
}

// Registry is the read-only table of tax rules for one year. It is immutable
// after construction and safe for concurrent use.
type Registry struct {
	federal  FederalRules
	payroll  PayrollRules
	benefits BenefitRules
	profiles map[string]*Profile
}

// New builds a registry and validates every bracket table. Malformed tables
// fail here, at load time, never during a computation.
func New(federal FederalRules, payroll PayrollRules, benefits BenefitRules, profiles []*Profile) (*Registry, error) {
	if err := validateBrackets("federal", federal.Brackets); err != nil {
		return nil, err
	}
	byCode := make(map[string]*Profile, len(profiles))
	for _, p := range profiles {
		if p.Code == "" {
			return nil, fmt.Errorf("jurisdiction profile %q has no code", p.Name)
		}
		if _, dup := byCode[p.Code]; dup {
			return nil, fmt.Errorf("duplicate jurisdiction code %q", p.Code)
		}
		if err := validateBrackets(p.Code, p.Brackets); err != nil {
			return nil, err
		}
		byCode[p.Code] = p
	}
	return &Registry{
		federal:  federal,
		payroll:  payroll,
		benefits: benefits,
		profiles: byCode,
	}, nil
}

func validateBrackets(code string, brackets []TaxBracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("jurisdiction %s: empty bracket table", code)
	}
	if !brackets[0].Min.IsZero() {
		return fmt.Errorf("jurisdiction %s: first bracket starts at %s, want 0", code, brackets[0].Min)
	}
	for i, b := range brackets {
		if b.Rate.IsNegative() {
			return fmt.Errorf("jurisdiction %s: bracket %d has negative rate %s", code, i, b.Rate)
		}
		last := i == len(brackets)-1
		if b.Top != last {
			if b.Top {
				return fmt.Errorf("jurisdiction %s: bracket %d is unbounded but not last", code, i)
			}
			return fmt.Errorf("jurisdiction %s: final bracket must be unbounded", code)
		}
		if b.Top {
			continue
		}
		if b.Max.LessThanOrEqual(b.Min) {
			return fmt.Errorf("jurisdiction %s: bracket %d range [%s, %s] is empty", code, i, b.Min, b.Max)
		}
		if !brackets[i+1].Min.Equal(b.Max) {
			return fmt.Errorf("jurisdiction %s: bracket %d ends at %s but bracket %d starts at %s",
				code, i, b.Max, i+1, brackets[i+1].Min)
		}
	}
	return nil
}

// Federal returns the federal rules.
func (r *Registry) Federal() *FederalRules { return &r.federal }

// Payroll returns the CPP/QPP and EI/QPIP constants.
func (r *Registry) Payroll() *PayrollRules { return &r.payroll }

// Benefits returns the clawback and refundable-credit thresholds.
func (r *Registry) Benefits() *BenefitRules { return &r.benefits }

// Profile looks up a provincial profile by its two-letter code.
func (r *Registry) Profile(code string) (*Profile, error) {
	p, ok := r.profiles[code]
	if !ok {
		return nil, &UnknownCodeError{Code: code}
	}
	return p, nil
}

// Codes lists the registered jurisdiction codes in sorted order.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.profiles))
	for code := range r.profiles {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the built-in 2024 registry. The built-in tables are
// compile-time data; a validation failure here is a programming error.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg, err := New(federal2024(), payroll2024(), benefits2024(), provinces2024())
		if err != nil {
			panic(fmt.Sprintf("jurisdiction: built-in tables invalid: %v", err))
		}
		defaultReg = reg
	})
	return defaultReg
}
