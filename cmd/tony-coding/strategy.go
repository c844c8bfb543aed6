package main

import (
	"errors"

	"github.com/signadot/tony-coding/coding"
	"github.com/signadot/tony-coding/keyexpr"

	"github.com/hengadev/errsx"
)

// keyStrategy picks the strategy named by the flags, recording problems in
// errs.
func keyStrategy(errs *errsx.Map, snake, camel bool, src string) coding.KeyStrategy {
	if count(snake, camel, src != "") > 1 {
		errs.Set("strategy", errors.New("specify at most one of -snake -camel -e"))
		return coding.UseDefaultKeys
	}
	switch {
	case snake:
		return coding.ConvertToSnakeCase
	case camel:
		return coding.ConvertFromSnakeCase
	case src != "":
		s, err := keyexpr.Compile(src)
		if err != nil {
			errs.Set("e", err)
			return coding.UseDefaultKeys
		}
		return s.KeyStrategy()
	}
	return coding.UseDefaultKeys
}
