package issuance

import (
	"github.com/sunthewhat/easy-cert-claim/common/util"
	"github.com/sunthewhat/easy-cert-claim/type/shared/model"
)

// WhitelistValidator is a strict allow-list check against one event's names.
type WhitelistValidator struct {
	whitelist WhitelistReader
}

func NewWhitelistValidator(whitelist WhitelistReader) *WhitelistValidator {
	return &WhitelistValidator{whitelist: whitelist}
}

func (v *WhitelistValidator) IsAuthorized(eventId uint, submittedName string) (bool, error) {
	key := util.NormalizeName(submittedName)
	if key == "" {
		return false, nil
	}

	entries, err := v.whitelist.ListByEvent(eventId)
	if err != nil {
		return false, err
	}

	return MatchWhitelist(entries, key), nil
}

// MatchWhitelist reports whether any entry normalizes to key. Stored rows are
// re-normalized rather than trusting NameKey so that rows written before the
// key column existed still match.
func MatchWhitelist(entries []*model.Whitelist, key string) bool {
	for _, entry := range entries {
		if entry != nil && util.NormalizeName(entry.Name) == key {
			return true
		}
	}
	return false
}
