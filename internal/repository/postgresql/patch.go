package postgresql

import (
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/nullable"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
)

// patch accumulates SET clauses for a partial UPDATE. updated_at is always
// refreshed so an empty patch still returns the current row.
type patch struct {
	setParts []string
	guards   []string
	args     []interface{}
}

func newPatch() *patch {
	return &patch{setParts: []string{"updated_at = NOW()"}}
}

func (p *patch) add(column string, value interface{}) {
	p.args = append(p.args, value)
	p.setParts = append(p.setParts, fmt.Sprintf("%s = $%d", column, len(p.args)))
}

// addCast is add for parameters that need an explicit SQL type, such as
// "HH:MM" strings written to TIME columns.
func (p *patch) addCast(column string, value interface{}, cast string) {
	p.args = append(p.args, value)
	p.setParts = append(p.setParts, fmt.Sprintf("%s = $%d::%s", column, len(p.args), cast))
}

func setField[T any](p *patch, column string, f nullable.Field[T]) {
	if !f.Set {
		return
	}
	p.add(column, f.Value)
}

// setString trims the value and stores blanks as NULL.
func setString(p *patch, column string, f nullable.Field[string]) {
	if !f.Set {
		return
	}
	if f.Value == nil {
		p.add(column, nil)
		return
	}
	p.add(column, validator.OptionalString(*f.Value))
}

// setRequiredString ignores explicit nulls, which NOT NULL columns cannot take.
func setRequiredString(p *patch, column string, f nullable.Field[string]) {
	if f.Value == nil {
		return
	}
	p.add(column, strings.TrimSpace(*f.Value))
}

// setDate parses a YYYY-MM-DD value. Blank or null clears the column.
func setDate(p *patch, column string, f nullable.Field[string]) {
	if !f.Set {
		return
	}
	var date *time.Time
	if f.Value != nil {
		date, _ = validator.ParseOptionalDate(*f.Value)
	}
	p.add(column, date)
}

func setClock(p *patch, column string, f nullable.Field[string]) {
	if !f.Set {
		return
	}
	var clock *string
	if f.Value != nil {
		clock = validator.OptionalString(*f.Value)
	}
	p.addCast(column, clock, "text::time")
}

// guard adds a WHERE condition; format holds one %d for the placeholder.
func (p *patch) guard(format string, value interface{}) {
	p.args = append(p.args, value)
	p.guards = append(p.guards, fmt.Sprintf(format, len(p.args)))
}

// update renders "UPDATE table SET ... WHERE id = $n [AND guards] RETURNING returning".
func (p *patch) update(table, id, returning string) (string, []interface{}) {
	args := append(p.args, id)
	where := append([]string{fmt.Sprintf("id = $%d", len(args))}, p.guards...)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s RETURNING %s",
		table, strings.Join(p.setParts, ", "), strings.Join(where, " AND "), returning)
	return query, args
}

func validatedDate(s string) (time.Time, bool) {
	return validator.IsValidDate(strings.TrimSpace(s))
}
