package directory

import (
	"net/url"
	"strconv"

	"github.com/xw1nchester/pinfinds-backend/internal/apperror"
	"github.com/xw1nchester/pinfinds-backend/internal/provider"
	"github.com/xw1nchester/pinfinds-backend/pkg/utils"
)

var ErrInvalidVerified = apperror.NewAppError("verified must be one of true, false, all")

// FromQuery builds a filter from the search, category and verified query
// parameters. category may repeat or hold a comma separated list.
func FromQuery(q url.Values) (Filter, error) {
	f := NewFilter()
	f.SetSearchTerm(q.Get("search"))

	for _, value := range utils.SplitValues(q["category"]) {
		c, err := provider.ParseCategory(value)
		if err != nil {
			return Filter{}, err
		}
		f.Categories[c] = struct{}{}
	}

	switch verified := q.Get("verified"); verified {
	case "", "all":
	default:
		v, err := strconv.ParseBool(verified)
		if err != nil {
			return Filter{}, ErrInvalidVerified
		}
		f.SetShowVerified(&v)
	}

	return f, nil
}
