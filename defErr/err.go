// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package defErr

import (
	"errors"
	"fmt"
)

// error chains are built on errors.Join so errors.Is/As still reach the sentinel.

func Concat(err error, description string) error {
	return errors.Join(err, errors.New(description))
}

func DescribeThenConcat(description string, err error) error {
	return errors.Join(errors.New(description), err)
}

func Describef(err error, format string, args ...any) error {
	return DescribeThenConcat(fmt.Sprintf(format, args...), err)
}

// PushErrorToErrChain appends toAdd behind curr. nil toAdd leaves curr untouched.
func PushErrorToErrChain(curr, toAdd error) error {
	if toAdd == nil {
		return curr
	}
	return errors.Join(curr, DescribeThenConcat(`<-`, toAdd))
}
