// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const credentialsTable = "credentials"

// sqlite uses "?" placeholders
var sqlb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetCredential(name string) (string, []any, error) {
	return sqlb.
		Select("value").
		From(credentialsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildPutCredential(name, value string, now time.Time) (string, []any, error) {
	return sqlb.
		Insert(credentialsTable).
		Columns("name", "value", "updated_at").
		Values(name, value, now.UTC()).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteCredential(name string) (string, []any, error) {
	return sqlb.
		Delete(credentialsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}
