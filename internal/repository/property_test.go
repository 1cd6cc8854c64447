package repository

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/query"
)

func ptr[T any](v T) *T { return &v }

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

var placeholderRe = regexp.MustCompile(`\$(\d+)`)

func mustBuild(t *testing.T, filter model.PropertyFilter, limit int) query.Statement {
	t.Helper()

	stmt, err := BuildPropertyListing(filter, limit)
	require.NoError(t, err)
	return stmt
}

// placeholders returns the placeholder numbers in textual order.
func placeholders(t *testing.T, text string) []int {
	t.Helper()

	var out []int
	for _, m := range placeholderRe.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		require.NoError(t, err)
		out = append(out, n)
	}
	return out
}

func TestBuildPropertyListingNoFilters(t *testing.T) {
	stmt := mustBuild(t, model.PropertyFilter{}, 5)

	assert.Equal(t, []any{5}, stmt.Args)
	assert.NotContains(t, stmt.Text, "WHERE")
	assert.NotContains(t, stmt.Text, "HAVING")
	assert.True(t, strings.HasSuffix(stmt.Text, "GROUP BY properties.id\nORDER BY cost_per_night LIMIT $1;"), stmt.Text)
}

func TestBuildPropertyListingCityAndRating(t *testing.T) {
	stmt := mustBuild(t, model.PropertyFilter{
		City:          ptr("Van"),
		MinimumRating: dec("4"),
	}, 0)

	require.Len(t, stmt.Args, 3)
	assert.Equal(t, "%Van%", stmt.Args[0])
	rating, ok := stmt.Args[1].(decimal.Decimal)
	require.True(t, ok)
	assert.True(t, rating.Equal(decimal.NewFromInt(4)))
	assert.Equal(t, 10, stmt.Args[2])

	assert.Contains(t, stmt.Text, "\nWHERE city LIKE $1\n")
	assert.Contains(t, stmt.Text, "\nGROUP BY properties.id\nHAVING ROUND(AVG(rating), 2) >= $2\n")
	assert.True(t, strings.HasSuffix(stmt.Text, "ORDER BY cost_per_night LIMIT $3;"))
}

func TestBuildPropertyListingPriceRange(t *testing.T) {
	stmt := mustBuild(t, model.PropertyFilter{
		OwnerID:              ptr(int64(3)),
		MinimumPricePerNight: dec("50"),
		MaximumPricePerNight: dec("150.5"),
	}, 20)

	assert.Equal(t, []any{int64(3), int64(5000), int64(15050), 20}, stmt.Args)
	assert.Contains(t, stmt.Text, "\nWHERE owner_id = $1\nAND cost_per_night >= $2\nAND cost_per_night <= $3\n")
}

func TestBuildPropertyListingFixedPredicateOrder(t *testing.T) {
	stmt := mustBuild(t, model.PropertyFilter{
		MaximumPricePerNight: dec("200"),
		City:                 ptr("Van"),
		MinimumPricePerNight: dec("100"),
		OwnerID:              ptr(int64(1)),
		MinimumRating:        dec("3.5"),
	}, 10)

	city := strings.Index(stmt.Text, "city LIKE $1")
	owner := strings.Index(stmt.Text, "owner_id = $2")
	minPrice := strings.Index(stmt.Text, "cost_per_night >= $3")
	maxPrice := strings.Index(stmt.Text, "cost_per_night <= $4")
	having := strings.Index(stmt.Text, "HAVING ROUND(AVG(rating), 2) >= $5")
	limit := strings.Index(stmt.Text, "LIMIT $6;")

	for _, idx := range []int{city, owner, minPrice, maxPrice, having, limit} {
		require.NotEqual(t, -1, idx, stmt.Text)
	}
	assert.Less(t, city, owner)
	assert.Less(t, owner, minPrice)
	assert.Less(t, minPrice, maxPrice)
	assert.Less(t, maxPrice, having)
	assert.Less(t, having, limit)
	assert.Len(t, stmt.Args, 6)
}

// Every subset of filters yields exactly one WHERE when a row-level
// predicate is present, one AND per additional predicate, and placeholders
// numbered 1..N in textual order.
func TestBuildPropertyListingConjunctions(t *testing.T) {
	for mask := 0; mask < 32; mask++ {
		var filter model.PropertyFilter
		predicates := 0
		if mask&1 != 0 {
			filter.City = ptr("a")
			predicates++
		}
		if mask&2 != 0 {
			filter.OwnerID = ptr(int64(1))
			predicates++
		}
		if mask&4 != 0 {
			filter.MinimumPricePerNight = dec("1")
			predicates++
		}
		if mask&8 != 0 {
			filter.MaximumPricePerNight = dec("2")
			predicates++
		}
		having := 0
		if mask&16 != 0 {
			filter.MinimumRating = dec("3")
			having = 1
		}

		stmt := mustBuild(t, filter, 10)

		wantWhere := 0
		wantAnd := 0
		if predicates > 0 {
			wantWhere = 1
			wantAnd = predicates - 1
		}
		assert.Equal(t, wantWhere, strings.Count(stmt.Text, "\nWHERE "), "mask %05b", mask)
		assert.Equal(t, wantAnd, strings.Count(stmt.Text, "\nAND "), "mask %05b", mask)
		assert.Equal(t, having, strings.Count(stmt.Text, "\nHAVING "), "mask %05b", mask)
		assert.Len(t, stmt.Args, predicates+having+1, "mask %05b", mask)
		assert.Equal(t, 10, stmt.Args[len(stmt.Args)-1])

		want := make([]int, len(stmt.Args))
		for i := range want {
			want[i] = i + 1
		}
		assert.Equal(t, want, placeholders(t, stmt.Text), "mask %05b", mask)
	}
}

func TestBuildPropertyListingRejectsOutOfRangePrice(t *testing.T) {
	_, err := BuildPropertyListing(model.PropertyFilter{MinimumPricePerNight: dec("1e20")}, 10)
	assert.ErrorIs(t, err, model.ErrAmountOutOfRange)

	_, err = BuildPropertyListing(model.PropertyFilter{MaximumPricePerNight: dec("99999999999999999999")}, 10)
	assert.ErrorIs(t, err, model.ErrAmountOutOfRange)

	exec := &fakeExecutor{}
	_, err = NewPropertyRepository(exec).ListProperties(context.Background(), model.PropertyFilter{MaximumPricePerNight: dec("1e20")}, 10)
	assert.ErrorIs(t, err, model.ErrAmountOutOfRange)
	assert.Empty(t, exec.calls)
}

func TestBuildPropertyListingIsDeterministic(t *testing.T) {
	filter := model.PropertyFilter{City: ptr("Van"), MinimumRating: dec("4")}

	a := mustBuild(t, filter, 3)
	b := mustBuild(t, filter, 3)
	assert.Equal(t, a.Text, b.Text)
	assert.Equal(t, len(a.Args), len(b.Args))
}
