package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"brickset/internal/domain"
)

// ============================================================================
// Null Type Conversion Helpers
// ============================================================================

// nullToString safely converts sql.NullString to string
func nullToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// nullToInt safely converts sql.NullInt64 to int
func nullToInt(ni sql.NullInt64) int {
	if ni.Valid {
		return int(ni.Int64)
	}
	return 0
}

// ============================================================================
// JSON Helpers
// ============================================================================

// unmarshalJSONField safely unmarshals JSON from nullable string into target
func unmarshalJSONField(ns sql.NullString, target interface{}) error {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	return json.Unmarshal([]byte(ns.String), target)
}

// ============================================================================
// LegoSet Row Scanner
// ============================================================================
//
// Column order must match between legoSetColumns and scanArgs().

const legoSetColumns = `number, name, year, theme, subtheme, pieces, tags`

// legoSetRow holds all columns from a lego_sets query for scanning
type legoSetRow struct {
	Number   string
	Name     sql.NullString
	Year     sql.NullInt64
	Theme    sql.NullString
	Subtheme sql.NullString
	Pieces   sql.NullInt64
	TagsJSON sql.NullString
}

// scanArgs returns pointers for rows.Scan in legoSetColumns order
func (r *legoSetRow) scanArgs() []interface{} {
	return []interface{}{
		&r.Number,
		&r.Name,
		&r.Year,
		&r.Theme,
		&r.Subtheme,
		&r.Pieces,
		&r.TagsJSON,
	}
}

// toDomain converts the scanned row to a domain.LegoSet
func (r *legoSetRow) toDomain() (domain.LegoSet, error) {
	set := domain.LegoSet{
		ID:       r.Number,
		Name:     nullToString(r.Name),
		Year:     nullToInt(r.Year),
		Theme:    nullToString(r.Theme),
		Subtheme: nullToString(r.Subtheme),
		Pieces:   nullToInt(r.Pieces),
	}

	if err := unmarshalJSONField(r.TagsJSON, &set.Tags); err != nil {
		return domain.LegoSet{}, fmt.Errorf("failed to unmarshal tags of %s: %w", r.Number, err)
	}

	return set, nil
}
