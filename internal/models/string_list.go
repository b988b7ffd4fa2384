package models

import "encoding/json"

// StringList is an order-preserving sequence of strings. Duplicates are
// allowed and the empty list is the default for every list-typed field.
type StringList []string

// MarshalJSON keeps nil lists as [] on the wire so clients never see null.
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}
