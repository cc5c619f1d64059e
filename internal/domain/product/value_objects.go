package product

import "strings"

const MaxCodeLength = 16

type Code string

func NewCode(s string) (Code, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", ErrEmptyCode
	}
	if len(t) > MaxCodeLength {
		return "", ErrCodeTooLong
	}
	return Code(t), nil
}

func (c Code) String() string { return string(c) }
