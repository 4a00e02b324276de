package supabase

import (
	"context"
	"net/http"
	"net/url"
)

const singleObject = "application/vnd.pgrst.object+json"

// Query is a request against one table of the data api, built in the style of
// the platform's own sdk: From(...).Select(...).Eq(...).Single().Execute(...)
type Query struct {
	client    *Client
	table     string
	token     string
	method    string
	params    url.Values
	body      any
	single    bool
	returning bool
}

// From starts a query on table on behalf of the user owning accessToken
func (c *Client) From(table, accessToken string) *Query {
	return &Query{
		client: c,
		table:  table,
		token:  accessToken,
		method: http.MethodGet,
		params: url.Values{},
	}
}

// Select sets the returned columns, after Insert or Update it asks for the written rows back
func (q *Query) Select(columns string) *Query {
	q.params.Set("select", columns)
	if q.method != http.MethodGet {
		q.returning = true
	}
	return q
}

// Insert writes v, a row or a slice of rows
func (q *Query) Insert(v any) *Query {
	q.method = http.MethodPost
	q.body = v
	return q
}

// Update patches the filtered rows with the columns of v
func (q *Query) Update(v any) *Query {
	q.method = http.MethodPatch
	q.body = v
	return q
}

// Delete removes the filtered rows
func (q *Query) Delete() *Query {
	q.method = http.MethodDelete
	return q
}

// Eq filters rows where column equals value
func (q *Query) Eq(column, value string) *Query {
	q.params.Add(column, "eq."+value)
	return q
}

// Order sorts by column
func (q *Query) Order(column string, ascending bool) *Query {
	dir := "desc"
	if ascending {
		dir = "asc"
	}
	q.params.Set("order", column+"."+dir)
	return q
}

// Single asserts exactly one row, the result decodes into a struct instead of a slice
func (q *Query) Single() *Query {
	q.single = true
	return q
}

// Execute runs the query decoding the response into out, out may be nil
func (q *Query) Execute(ctx context.Context, out any) error {
	header := http.Header{}
	if q.single {
		header.Set("Accept", singleObject)
	}
	if q.method != http.MethodGet {
		if q.returning {
			header.Set("Prefer", "return=representation")
		} else {
			header.Set("Prefer", "return=minimal")
		}
	}

	return q.client.do(ctx, request{
		method: q.method,
		path:   restPath + "/" + q.table,
		query:  q.params,
		header: header,
		token:  q.token,
		body:   q.body,
	}, out)
}
