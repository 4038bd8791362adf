// Package social validates social link fields of a community draft.
package social

import (
	"fmt"
	"strings"

	"github.com/questx-lab/wizard/internal/entity"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrorMessage is the inline error shown under an invalid field.
func ErrorMessage(platform entity.Platform) string {
	return fmt.Sprintf("Please enter a valid %s URL or username", platform)
}

// Validate checks one field. Blank input is valid because every link is
// optional on its own.
func Validate(platform entity.Platform, raw string) (string, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", true
	}

	p, ok := patterns[platform]
	if !ok {
		return ErrorMessage(platform), false
	}

	if p.handle != nil && p.handle.MatchString(value) {
		return "", true
	}

	if p.url.MatchString(value) {
		return "", true
	}

	return ErrorMessage(platform), false
}

// Errors maps a platform to its current error. A platform is absent when its
// field is blank or valid.
type Errors map[entity.Platform]string

// Apply revalidates one platform and returns the updated copy of e.
func (e Errors) Apply(platform entity.Platform, raw string) Errors {
	out := e.Clone()

	if msg, ok := Validate(platform, raw); ok {
		delete(out, platform)
	} else {
		out[platform] = msg
	}

	return out
}

func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

func (e Errors) Empty() bool {
	return len(e) == 0
}

// Platforms returns the platforms with an error, sorted by name.
func (e Errors) Platforms() []entity.Platform {
	keys := maps.Keys(e)
	slices.Sort(keys)
	return keys
}

func ValidateAll(links map[entity.Platform]string) Errors {
	errs := Errors{}
	for platform, raw := range links {
		if msg, ok := Validate(platform, raw); !ok {
			errs[platform] = msg
		}
	}
	return errs
}
