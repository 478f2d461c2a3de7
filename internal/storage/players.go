package storage

import (
	"database/sql"
	"fmt"

	"github.com/pable/soccerstats/internal/model"
)

// LoadPlayers replaces the contents of the players table with t in a single transaction.
func (db *DB) LoadPlayers(t model.Table) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM players`); err != nil {
		return fmt.Errorf("clear players: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO players(
			player, nation, age, pos,
			mp, min, gls, ast, ga,
			gls_90, ast_90, xg, xag,
			comp, squad
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range t.Rows() {
		_, err = stmt.Exec(
			p.Name, p.Nation, p.Age, p.Pos,
			p.MP, p.Min, p.Gls, p.Ast, p.GA,
			p.Gls90, p.Ast90, p.XG, p.XAG,
			p.Comp, p.Squad,
		)
		if err != nil {
			return fmt.Errorf("insert player %q: %w", p.Name, err)
		}
	}
	return tx.Commit()
}

// CountPlayers returns the number of rows in the players table.
func (db *DB) CountPlayers() (int, error) {
	var n int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM players`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// QueryRaw runs an arbitrary query and returns every value rendered as text.
// NULLs come back as "NULL".
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out [][]string
	for rows.Next() {
		vals := make([]sql.NullString, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, fmt.Errorf("scan: %w", err)
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			if v.Valid {
				row[i] = v.String
			} else {
				row[i] = "NULL"
			}
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}
