package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelect_NoPredicates(t *testing.T) {
	q, args := NewSelect("SELECT id FROM t").OrderBy("id DESC").Build()

	assert.Equal(t, "SELECT id FROM t\nORDER BY id DESC", q)
	assert.Empty(t, args)
}

func TestSelect_BindsInOrder(t *testing.T) {
	q, args := NewSelect("  SELECT id FROM t  ").
		Where(
			Eq("a", 1),
			Gte("b", "x"),
			Lte("c", 3.5),
			In("d", 7, 8, 9),
		).
		OrderBy("a", "id DESC").
		Build()

	assert.Equal(t, "SELECT id FROM t\nWHERE a = $1\n  AND b >= $2\n  AND c <= $3\n  AND d IN ($4, $5, $6)\nORDER BY a, id DESC", q)
	assert.Equal(t, []any{1, "x", 3.5, 7, 8, 9}, args)
}

func TestSelect_GroupsAndExpr(t *testing.T) {
	q, args := NewSelect("SELECT id FROM t").
		Where(
			Eq("status", 1),
			Or(
				Eq("owner", 42),
				Expr("EXISTS (SELECT 1 FROM a WHERE a.id = t.id AND a.user_id = ?)", 42),
			),
			Or(Eq("x", "y"), Eq("z", "w")),
		).
		Build()

	assert.Equal(t, "SELECT id FROM t\nWHERE status = $1\n  AND (owner = $2 OR EXISTS (SELECT 1 FROM a WHERE a.id = t.id AND a.user_id = $3))\n  AND (x = $4 OR z = $5)", q)
	assert.Equal(t, []any{1, 42, 42, "y", "w"}, args)
}

func TestIn_Empty(t *testing.T) {
	q, args := NewSelect("SELECT 1").Where(In[int]("x")).Build()

	assert.Equal(t, "SELECT 1\nWHERE FALSE", q)
	assert.Empty(t, args)
}

func TestValuesNeverSpliced(t *testing.T) {
	hostile := "'; DROP TABLE payment.people; --"
	q, args := NewSelect("SELECT 1 FROM t").Where(Eq("mvz", hostile)).Build()

	assert.NotContains(t, q, "DROP")
	assert.Equal(t, []any{hostile}, args)
}
