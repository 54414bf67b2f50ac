package normalize

import "fmt"

// UnknownAlphabetError is returned for an alphabet name that is not predefined.
type UnknownAlphabetError struct {
	Name string
}

func (e *UnknownAlphabetError) Error() string {
	return fmt.Sprintf("unknown alphabet %q: must be one of hebrew, hebrew-folded, latin", e.Name)
}
