package localdb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "test.db")
}

func TestCreateInsertSelect(t *testing.T) {
	db, err := Create(testPath(t))
	require.NoError(t, err)

	code, err := db.AddLines([]string{
		"CREATE TABLE users (id UUID, name TEXT);",
		"INSERT INTO users VALUES ('11111111-1111-1111-1111-111111111111', 'kk');",
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec(code))

	res, err := db.Query("SELECT * FROM users;")
	require.NoError(t, err)

	assert.Equal(t, []Column{
		{Name: "id", Type: TypeUUID},
		{Name: "name", Type: TypeText},
	}, res.Columns)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, Row{
		{Type: TypeUUID, U: uuid.MustParse("11111111-1111-1111-1111-111111111111")},
		{Type: TypeText, S: "kk"},
	}, res.Rows[0])
}

func TestPersistenceAcrossReopen(t *testing.T) {
	path := testPath(t)

	db, err := Create(path)
	require.NoError(t, err)

	code, err := db.AddLines([]string{
		"CREATE TABLE users (id UUID, name TEXT);",
		"INSERT INTO users VALUES ('11111111-1111-1111-1111-111111111111', 'kk');",
		"INSERT INTO users VALUES ('22222222-2222-2222-2222-222222222222', 'bb');",
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec(code))

	reopened, err := Open(path)
	require.NoError(t, err)

	res, err := reopened.Query("SELECT * FROM users;")
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, "kk", res.Rows[0][1].S)
	assert.Equal(t, "bb", res.Rows[1][1].S)
	assert.Equal(t, []Column{
		{Name: "id", Type: TypeUUID},
		{Name: "name", Type: TypeText},
	}, res.Columns)

	// The store persisted; the batch codes did not.
	err = reopened.Exec(code)
	assert.ErrorIs(t, err, ErrUnknownCode)
}

func TestCreateLoadsExistingFile(t *testing.T) {
	path := testPath(t)

	db, err := Create(path)
	require.NoError(t, err)
	code, err := db.AddLines([]string{"CREATE TABLE t (n INT);", "INSERT INTO t VALUES (5);"})
	require.NoError(t, err)
	require.NoError(t, db.Exec(code))

	again, err := Create(path)
	require.NoError(t, err)
	res, err := again.Query("SELECT * FROM t;")
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, int64(5), res.Rows[0][0].I)
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(testPath(t))
	assert.ErrorIs(t, err, ErrIO)
}

func TestOpen_CorruptFile(t *testing.T) {
	path := testPath(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"t": "oops"}`), 0o644))

	_, err := Open(path)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestExec_PartialFailureIsPersisted(t *testing.T) {
	path := testPath(t)

	db, err := Create(path)
	require.NoError(t, err)

	code, err := db.AddLines([]string{
		"CREATE TABLE t (n INT);",
		"INSERT INTO t VALUES (1);",
		"INSERT INTO t VALUES ('boom');",
	})
	require.NoError(t, err)

	err = db.Exec(code)
	require.ErrorIs(t, err, ErrTypeMismatch)

	// What ran before the failure is on disk.
	reopened, err := Open(path)
	require.NoError(t, err)
	res, err := reopened.Query("SELECT * FROM t;")
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, int64(1), res.Rows[0][0].I)
}

func TestAddLines_SyntaxErrorCarriesFragment(t *testing.T) {
	db, err := Create(testPath(t))
	require.NoError(t, err)

	_, err = db.AddLines([]string{"SELECT * FROM users"})
	var syn *SyntaxError
	require.ErrorAs(t, err, &syn)
	assert.Equal(t, "SELECT * FROM users", syn.Fragment)
}

func TestQuery_ErrorTaxonomy(t *testing.T) {
	db, err := Create(testPath(t))
	require.NoError(t, err)

	_, err = db.Query("SELECT * FROM ghosts;")
	assert.ErrorIs(t, err, ErrTableNotFound)

	_, err = db.Query("SELECT name FROM ghosts;")
	assert.ErrorIs(t, err, ErrUnsupportedSelectClause)

	_, err = db.Query("CREATE TABLE t (a INT);")
	assert.ErrorIs(t, err, ErrNotAQuery)

	_, err = db.AddLines([]string{"CREATE TABLE t (a BOOL);"})
	assert.ErrorIs(t, err, ErrUnknownColumnType)

	_, err = db.AddLines([]string{"CREATE TABLE t (a INT, a INT);"})
	assert.ErrorIs(t, err, ErrDuplicateColumn)
}

func TestLastWriterWins(t *testing.T) {
	path := testPath(t)

	first, err := Create(path)
	require.NoError(t, err)
	second, err := Open(path)
	require.NoError(t, err)

	codeA, err := first.AddLines([]string{"CREATE TABLE a (n INT);"})
	require.NoError(t, err)
	require.NoError(t, first.Exec(codeA))

	// The second handle never saw table a; its save overwrites the file.
	codeB, err := second.AddLines([]string{"CREATE TABLE b (n INT);"})
	require.NoError(t, err)
	require.NoError(t, second.Exec(codeB))

	final, err := Open(path)
	require.NoError(t, err)
	_, err = final.Query("SELECT * FROM a;")
	assert.ErrorIs(t, err, ErrTableNotFound)
	_, err = final.Query("SELECT * FROM b;")
	require.NoError(t, err)
}

func TestSaveWritesStableBytes(t *testing.T) {
	path := testPath(t)

	db, err := Create(path)
	require.NoError(t, err)
	code, err := db.AddLines([]string{
		"CREATE TABLE t (id UUID, n INT);",
		"INSERT INTO t VALUES ('11111111-1111-1111-1111-111111111111', 7);",
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec(code))

	before, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, db.Save())
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}
