package impl

import "syncfloww/internal/errors"

// translate maps a repository sentinel to its domain error and wraps everything else with action.
func translate(err, sentinel, domainErr error, action string) error {
	if errors.Is(err, sentinel) {
		return domainErr
	}

	return errors.Wrap(err, action)
}
