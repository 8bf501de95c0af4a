package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, email, password, is_admin)
    VALUES ($1, $2, $3, $4)
    RETURNING userid;`

	findUserByUsername = `SELECT userid, username, email, password, is_admin
    FROM users
    WHERE username = $1;`

	getAllUsers = `SELECT userid, username, email, password, is_admin
    FROM users;`

	getAllCategories = `SELECT categoryid, categoryname
    FROM categories;`
)

// psql is the statement builder shared by product queries. Products are the
// one entity whose queries vary by shape (optional category filter, optional
// image column), so they go through squirrel instead of hand-numbered
// placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildInsertProduct produces the INSERT for a new product row. Price travels
// as a pre-formatted decimal string so the DECIMAL(10,2) column never sees a
// binary float.
func buildInsertProduct(productName, description, price string, categoryID *int64, imageURL *string) (string, []any, error) {
	return psql.
		Insert("products").
		Columns("productname", "description", "price", "categoryid", "image_url").
		Values(productName, description, price, categoryID, imageURL).
		Suffix("RETURNING productid").
		ToSql()
}

// buildSelectProducts produces the product listing query. A nil categoryID
// selects the full table; a non-nil one appends the category equality filter.
func buildSelectProducts(categoryID *int64) (string, []any, error) {
	builder := psql.
		Select("productid", "productname", "description", "price", "categoryid", "image_url").
		From("products")

	if categoryID != nil {
		builder = builder.Where(sq.Eq{"categoryid": *categoryID})
	}

	return builder.ToSql()
}

// buildSelectProductByID produces the single-product lookup query.
func buildSelectProductByID(productID int64) (string, []any, error) {
	return psql.
		Select("productid", "productname", "description", "price", "categoryid", "image_url").
		From("products").
		Where(sq.Eq{"productid": productID}).
		ToSql()
}
