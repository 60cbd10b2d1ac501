package preference

import (
	"context"
	"errors"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

var ErrInvalidTheme = errors.New("theme must be light or dark")

func ParseTheme(v string) (Theme, error) {
	switch Theme(v) {
	case ThemeLight, ThemeDark:
		return Theme(v), nil
	}
	return "", ErrInvalidTheme
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

type Repository interface {
	LoadTheme(ctx context.Context, owner string) (Theme, error)
	SaveTheme(ctx context.Context, owner string, theme Theme) error
}
