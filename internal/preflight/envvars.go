package preflight

import (
	"context"
	"fmt"

	averrors "github.com/avep-labs/avep/internal/errors"
)

// LookupWithFallback consults primary first and falls back to values for
// names primary leaves unset or empty.
func LookupWithFallback(primary LookupFunc, values map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		if v, ok := primary(name); ok && v != "" {
			return v, true
		}
		v, ok := values[name]
		return v, ok
	}
}

// isSet reports whether name has a non-empty value.
func (c *Checker) isSet(name string) bool {
	v, ok := c.lookupEnv(name)
	return ok && v != ""
}

// CheckEnv reports each configured variable. Values are never printed.
func (c *Checker) CheckEnv(_ context.Context) Report {
	r := newReport("env", "Checking environment variables...")
	c.logger.Debug("check started", "check", r.Name)

	for _, v := range c.cfg.Env.Vars {
		switch {
		case c.isSet(v.Name):
			r.pass(fmt.Sprintf("%s (set)", v.Name))
		case v.Required:
			verr := averrors.New(averrors.ErrCodeEnvVarMissing,
				fmt.Sprintf("required variable %s is not set", v.Name), nil).
				WithSuggestion(fmt.Sprintf("export %s or add it to your .env file", v.Name))
			c.logProbeError(r.Name, verr)
			r.fail(fmt.Sprintf("%s (required but not set)", v.Name), detail(verr))
		default:
			r.info(fmt.Sprintf("%s (not set, default will be used)", v.Name))
		}
	}
	return r
}
