package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"estate-hub/domain"

	"github.com/stretchr/testify/require"
)

const houseDocument = `{"id":"src-1","title":"Lekki duplex","description":"Detached duplex","price":50000000,` +
	`"location":{"address":"12 Admiralty Way","city":"Lekki","state":"Lagos","coordinates":{"lat":6.43,"lng":3.47}},` +
	`"propertyType":"house","bedrooms":4,"bathrooms":3,"area":320,"amenities":["pool"],` +
	`"images":["https://cdn.example.com/p/1.jpg"],"isVerified":false,"agentId":"agent-1","agentName":"Ada Obi",` +
	`"createdAt":"2024-05-01T10:00:00.000Z","updatedAt":"2024-05-01T10:00:00.000Z"}`

// setup isolates a command run: empty working directory, plain output and
// a private store.
func setup(t *testing.T) string {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("COLOURS", "false")
	t.Setenv("LOG_LEVEL", "ERROR")
	t.Setenv("BADGER_FILEPATH", filepath.Join(dir, "store"))
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(args ...string) (string, error) {
	return executeContext(context.Background(), args...)
}

func executeContext(ctx context.Context, args ...string) (string, error) {
	var out bytes.Buffer
	root := newRootCmd(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func TestValidateCmd(t *testing.T) {
	req := require.New(t)
	dir := setup(t)
	valid := writeFile(t, dir, "house.json", houseDocument)
	invalid := writeFile(t, dir, "land.json", strings.Replace(houseDocument, `"propertyType":"house"`, `"propertyType":"land"`, 1))
	image := writeFile(t, dir, "photo.png", "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	out, err := execute("validate", valid)
	req.NoError(err)
	req.Equal("OK "+valid+"\n", out)

	out, err = execute("validate", "--kind", "property", valid, invalid, image)
	req.ErrorIs(err, errRejected)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	req.Len(lines, 3)
	req.True(strings.HasPrefix(lines[0], "OK "))
	req.True(strings.HasPrefix(lines[1], "FAIL "+invalid))
	req.Contains(lines[1], "bedrooms")
	req.True(strings.HasPrefix(lines[2], "FAIL "+image))
	req.Contains(lines[2], "image/png")
}

func TestValidateCmd_Unknown_Kind(t *testing.T) {
	dir := setup(t)
	path := writeFile(t, dir, "house.json", houseDocument)

	_, err := execute("validate", "--kind", "villa", path)
	require.ErrorContains(t, err, `unknown kind "villa"`)
}

func TestKindsCmd(t *testing.T) {
	setup(t)
	out, err := execute("kinds")
	require.NoError(t, err)
	require.Equal(t, kindNames(), strings.Fields(out))
	require.Contains(t, kindNames(), "verification")
}

func TestImportAndListCmd(t *testing.T) {
	req := require.New(t)
	dir := setup(t)
	path := writeFile(t, dir, "house.json", houseDocument)
	broken := writeFile(t, dir, "broken.json", `{"id":`)

	out, err := execute("import", path, broken)
	req.ErrorIs(err, errRejected)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	req.Len(lines, 3)
	req.Equal("OK "+path, lines[0])
	imported, err := domain.Deserialize[domain.ApiResponse[domain.Property]]([]byte(lines[1]))
	req.NoError(err)
	req.True(imported.Success)
	req.NotEqual("src-1", imported.Data.ID)
	req.True(strings.HasPrefix(lines[2], "FAIL "+broken))

	out, err = execute("list", "--per-page", "5")
	req.NoError(err)
	listed, err := domain.Deserialize[domain.ApiResponse[domain.PaginatedResponse[domain.Property]]]([]byte(strings.TrimSpace(out)))
	req.NoError(err)
	req.True(listed.Success)
	req.Equal(1, listed.Data.TotalCount)
	req.Equal(5, listed.Data.ItemsPerPage)
	req.Equal(*imported.Data, listed.Data.Data[0])
}

func TestSettleCmd_Unknown_Payment(t *testing.T) {
	req := require.New(t)
	setup(t)

	out, err := execute("settle", "pay-1", "completed")
	req.NoError(err)
	response, err := domain.Deserialize[domain.ApiResponse[domain.Payment]]([]byte(strings.TrimSpace(out)))
	req.NoError(err)
	req.False(response.Success)
	req.Contains(*response.Error, "not found")
}

func TestMessagesCmd_Empty_Conversation(t *testing.T) {
	setup(t)
	out, err := execute("messages", "conv-1")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestImportCmd_Interrupted_Closes_Store(t *testing.T) {
	req := require.New(t)
	dir := setup(t)
	path := writeFile(t, dir, "house.json", houseDocument)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, err := executeContext(ctx, "import", path)
	req.ErrorIs(err, context.Canceled)
	req.Empty(out)

	// The store was released, so it can be opened again and holds nothing.
	out, err = execute("list")
	req.NoError(err)
	listed, err := domain.Deserialize[domain.ApiResponse[domain.PaginatedResponse[domain.Property]]]([]byte(strings.TrimSpace(out)))
	req.NoError(err)
	req.Equal(0, listed.Data.TotalCount)
}
