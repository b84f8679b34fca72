package localization

import (
	"time"

	"github.com/pkg/errors"

	"timetrack-service/internal/models"
)

// ErrUnknownTimezone is returned when a user's configured timezone does not
// resolve to a valid IANA zone name.
var ErrUnknownTimezone = errors.New("unknown timezone")

// ConvertToUserTime re-expresses t in the user's configured zone. The absolute
// instant is unchanged; only the wall-clock fields move. A nil user or an
// empty timezone leaves t untouched. Stored instants are always UTC, so a
// value without explicit zone handling is already in UTC here.
func ConvertToUserTime(t time.Time, user *models.User) (time.Time, error) {
	if user == nil || user.Timezone == "" {
		return t, nil
	}
	loc, err := time.LoadLocation(user.Timezone)
	if err != nil {
		return time.Time{}, errors.Wrapf(ErrUnknownTimezone, "%q", user.Timezone)
	}
	return t.In(loc), nil
}

// UserNow returns the current instant in the user's configured zone.
func UserNow(user *models.User) (time.Time, error) {
	return ConvertToUserTime(time.Now().UTC(), user)
}
