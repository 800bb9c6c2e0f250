package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/fwojciec/mosaic"
	"github.com/fwojciec/mosaic/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDocumentPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "html file", path: "files/van-gogh-paintings.html"},
		{name: "upper case extension", path: "files/SNAPSHOT.HTML"},
		{name: "empty path", path: "", wantErr: true},
		{name: "blank path", path: "   ", wantErr: true},
		{name: "json file", path: "results/out.json", wantErr: true},
		{name: "htm file", path: "files/page.htm", wantErr: true},
		{name: "no extension", path: "files/page", wantErr: true},
		{name: "html in directory name only", path: "files.html/page", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fs.ValidateDocumentPath(tt.path)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, mosaic.EINVALID, mosaic.ErrorCode(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDocumentName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "van-gogh-paintings", fs.DocumentName("files/van-gogh-paintings.html"))
	assert.Equal(t, "picasso", fs.DocumentName("/abs/dir/picasso.HTML"))
	assert.Equal(t, "plain", fs.DocumentName("plain"))
}

func TestOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		doc    string
		outDir string
		want   string
	}{
		{
			name:   "derives json name from document base name",
			doc:    "files/van-gogh-paintings.html",
			outDir: "results",
			want:   filepath.Join("results", "van-gogh-paintings.json"),
		},
		{
			name:   "ignores the document directory",
			doc:    "/tmp/snapshots/picasso-paintings.html",
			outDir: "out",
			want:   filepath.Join("out", "picasso-paintings.json"),
		},
		{
			name:   "empty output dir means current directory",
			doc:    "files/empty.html",
			outDir: "",
			want:   "empty.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, fs.OutputPath(tt.doc, tt.outDir))
		})
	}
}
