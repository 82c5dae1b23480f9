package querysql

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/wyvern/query"
)

// The generated statement text is a compatibility contract: golden files
// pin the exact bytes so any drift in clause order, spacing, or literal
// formatting fails loudly.
func TestGolden_GeneratedSQL(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	pricing := query.NewCriteria().
		WithCondition(query.Eq("provider", query.String("openai"))).
		WithCondition(query.Gt("price", query.Integer(10))).
		WithCondition(query.InList("region", query.String("us"), query.String("eu"))).
		WithCondition(query.Missing("valid_to")).
		WithSort(query.Asc("model_name")).
		WithSort(query.Desc("created_at")).
		WithLimit(10).
		WithOffset(20)

	g.Assert(t, "select_full", []byte(BuildSelect("llm_model_pricing", pricing)))
	g.Assert(t, "count_full", []byte(BuildCount("llm_model_pricing", pricing)))

	escaping := query.NewCriteria().
		WithCondition(query.Eq("author", query.String("O'Reilly"))).
		WithCondition(query.Match("title", "%sql's edge%")).
		WithCondition(query.Ne("rating", query.Float(4.5))).
		WithCondition(query.Eq("in_print", query.Boolean(false)))

	g.Assert(t, "select_escaping", []byte(BuildSelect("books", escaping)))
}
