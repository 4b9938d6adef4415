package db

import (
	"reflect"
	"testing"

	"github.com/go-pg/pg/v10/orm"
)

// The many2many machinery joins the association table against its base
// table in one FROM clause, so the join tables must not reuse the shared
// "t" alias of the base models.
func TestJoinTableAliases(t *testing.T) {
	baseAlias := orm.GetTable(reflect.TypeOf(Tag{})).Alias

	joinTables := []reflect.Type{
		reflect.TypeOf(PostTag{}),
		reflect.TypeOf(PostMedia{}),
	}
	for _, typ := range joinTables {
		table := orm.GetTable(typ)
		if table.Alias == baseAlias {
			t.Errorf("join table %s shares alias %s with the base models", table.SQLName, table.Alias)
		}
	}
}
