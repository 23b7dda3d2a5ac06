package espn

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// The scoreboard feed is not consistent about scalar encodings: ids and
// scores arrive as strings or numbers depending on sport and game
// state, and a few live-situation fields switch shape entirely. These
// types absorb that so the rest of the package stays typed. None of
// them ever fail a document decode; an unrecognized shape just decodes
// to the zero value.

// flexString accepts a JSON string or number and holds it as a string.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = ""
			return nil
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexString(n.String())
		return nil
	}
	*f = ""
	return nil
}

func (f flexString) String() string { return string(f) }

// flexFloat accepts a JSON number or numeric string.
type flexFloat struct {
	Value float64
	Valid bool
}

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*f = flexFloat{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			*f = flexFloat{Value: v, Valid: true}
		}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*f = flexFloat{Value: v, Valid: true}
	}
	return nil
}

// Ptr returns the value as a *float64, nil when unset.
func (f flexFloat) Ptr() *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// possessionRef holds a team reference that may arrive as a bare id
// (string or number) or as an object carrying a team id.
type possessionRef struct {
	ID string
}

func (p *possessionRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*p = possessionRef{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '{' {
		var obj struct {
			Team struct {
				ID flexString `json:"id"`
			} `json:"team"`
			ID flexString `json:"id"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return nil
		}
		if obj.Team.ID != "" {
			p.ID = obj.Team.ID.String()
		} else {
			p.ID = obj.ID.String()
		}
		return nil
	}
	var f flexString
	if err := f.UnmarshalJSON(data); err == nil {
		p.ID = f.String()
	}
	return nil
}
