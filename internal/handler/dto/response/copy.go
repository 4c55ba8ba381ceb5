package response

import (
	"log/slog"

	"github.com/jinzhu/copier"
)

// copyView copies same-named fields from a read model into a response DTO.
func copyView[T any](from any) *T {
	var to T
	if err := copier.Copy(&to, from); err != nil {
		// Field sets are fixed at compile time; a failure here is a programming error.
		slog.Error("failed to copy view into response", "error", err)
	}
	return &to
}

func copyViews[T any, V any](from []*V) []*T {
	out := make([]*T, len(from))
	for i, v := range from {
		out[i] = copyView[T](v)
	}
	return out
}
