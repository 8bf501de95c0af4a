package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInsertProduct(t *testing.T) {
	categoryID := int64(4)
	imageURL := "/uploads/ring.png"

	query, args, err := buildInsertProduct("Silver ring", "925 sterling silver", "19.99", &categoryID, &imageURL)

	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO products")
	assert.Contains(t, query, "RETURNING productid")
	assert.Contains(t, query, "$5")
	require.Len(t, args, 5)
	assert.Equal(t, "19.99", args[2], "price must be a decimal string")
}

func TestBuildInsertProduct_NilOptionals(t *testing.T) {
	query, args, err := buildInsertProduct("Pendant", "gold", "5.00", nil, nil)

	require.NoError(t, err)
	assert.Contains(t, query, "categoryid")
	assert.Contains(t, query, "image_url")
	require.Len(t, args, 5)
	assert.Nil(t, args[3])
	assert.Nil(t, args[4])
}

func TestBuildSelectProducts_FullListing(t *testing.T) {
	query, args, err := buildSelectProducts(nil)

	require.NoError(t, err)
	assert.False(t, strings.Contains(query, "WHERE"), "full listing must not filter: %s", query)
	assert.Empty(t, args)
}

func TestBuildSelectProducts_CategoryFilter(t *testing.T) {
	categoryID := int64(2)

	query, args, err := buildSelectProducts(&categoryID)

	require.NoError(t, err)
	assert.Contains(t, query, "WHERE categoryid = $1")
	assert.Equal(t, []any{int64(2)}, args)
}

func TestBuildSelectProductByID(t *testing.T) {
	query, args, err := buildSelectProductByID(11)

	require.NoError(t, err)
	assert.Contains(t, query, "WHERE productid = $1")
	assert.Equal(t, []any{int64(11)}, args)
}
