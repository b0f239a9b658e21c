package compare

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bom-matcher/core/storage/mocks"
	"bom-matcher/core/tokenizer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOpener_File(t *testing.T) {
	dir := t.TempDir()
	bomPath := filepath.Join(dir, "bom.csv")
	require.NoError(t, os.WriteFile(bomPath, []byte(scenarioBOM), 0o644))

	o := &Opener{}
	in, err := o.Open(context.Background(), Ref{Location: bomPath})
	require.NoError(t, err)
	assert.Equal(t, tokenizer.KindDelimited, in.Kind)
	assert.Equal(t, scenarioBOM, string(in.Data))

	in, err = o.Open(context.Background(), Ref{Location: bomPath, Kind: tokenizer.KindFreeform})
	require.NoError(t, err)
	assert.Equal(t, tokenizer.KindFreeform, in.Kind)

	_, err = o.Open(context.Background(), Ref{Location: filepath.Join(dir, "missing.txt")})
	assert.Error(t, err)
}

func TestOpener_Storage(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "boards", "rev-b/bom.xlsx", mock.Anything).
		Return(io.NopCloser(strings.NewReader("xlsx-bytes")), nil)
	client.On("GetObject", mock.Anything, "inputs", "pkp.txt", mock.Anything).
		Return(io.NopCloser(strings.NewReader(scenarioPKP)), nil)

	o := &Opener{Client: client, Bucket: "inputs"}
	in, err := o.Open(context.Background(), Ref{Location: "s3://boards/rev-b/bom.xlsx"})
	require.NoError(t, err)
	assert.Equal(t, "bom.xlsx", in.Name)
	assert.Equal(t, tokenizer.KindSpreadsheet, in.Kind)

	o.FromStorage = true
	in, err = o.Open(context.Background(), Ref{Location: "pkp.txt"})
	require.NoError(t, err)
	assert.Equal(t, tokenizer.KindFreeform, in.Kind)
	assert.Equal(t, scenarioPKP, string(in.Data))

	client.AssertExpectations(t)
}

func TestOpener_StorageNotConfigured(t *testing.T) {
	o := &Opener{}
	_, err := o.Open(context.Background(), Ref{Location: "s3://boards/bom.xlsx"})
	assert.ErrorContains(t, err, "storage is not configured")
}

func TestOpener_OpenAll(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "b", "bom.csv", mock.Anything).
		Return(io.NopCloser(strings.NewReader(scenarioBOM)), nil)
	client.On("GetObject", mock.Anything, "b", "pkp.txt", mock.Anything).
		Return(io.NopCloser(strings.NewReader(scenarioPKP)), nil)

	o := &Opener{Client: client}
	inputs, err := o.OpenAll(context.Background(),
		Ref{Location: "s3://b/bom.csv"},
		Ref{Location: "s3://b/pkp.txt"},
	)
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	assert.Equal(t, "bom.csv", inputs[0].Name)
	assert.Equal(t, "pkp.txt", inputs[1].Name)
}

func TestOpener_OpenAll_Error(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "b", "bom.csv", mock.Anything).
		Return(io.NopCloser(strings.NewReader(scenarioBOM)), nil)
	client.On("GetObject", mock.Anything, "b", "pkp.txt", mock.Anything).
		Return(nil, errors.New("access denied"))

	o := &Opener{Client: client}
	inputs, err := o.OpenAll(context.Background(),
		Ref{Location: "s3://b/bom.csv"},
		Ref{Location: "s3://b/pkp.txt"},
	)
	assert.Nil(t, inputs)
	assert.ErrorContains(t, err, "access denied")
}
