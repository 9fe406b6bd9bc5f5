package content

import "errors"

var (
	// ErrStoryNotFound No news story with the given id.
	ErrStoryNotFound = errors.New("story not found")

	// ErrAlreadySubscribed The email is already on the newsletter list.
	ErrAlreadySubscribed = errors.New("email is already subscribed")
)
