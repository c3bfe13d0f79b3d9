//go:build linux

package fuse

import (
	"bytes"
	"context"
	"io"
	"os"
	"time"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"
)

type DiskFS struct {
	entries map[string]FileEntry
	order   []string
	mtime   time.Time
}

func NewDiskFS(entries []FileEntry, mtime time.Time) *DiskFS {
	dfs := &DiskFS{
		entries: make(map[string]FileEntry, len(entries)),
		order:   make([]string, 0, len(entries)),
		mtime:   mtime,
	}
	for _, e := range entries {
		if _, ok := dfs.entries[e.Name]; !ok {
			dfs.order = append(dfs.order, e.Name)
		}
		dfs.entries[e.Name] = e
	}
	return dfs
}

func (dfs *DiskFS) Root() (fs.Node, error) {
	return &Dir{
		fs: dfs,
	}, nil
}

type Dir struct {
	fs *DiskFS
}

func (*Dir) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Inode = 1
	a.Mode = os.ModeDir | 0555
	return nil
}

func (d *Dir) Lookup(ctx context.Context, name string) (fs.Node, error) {
	if e, ok := d.fs.entries[name]; ok {
		return File{
			r:     bytes.NewReader(e.Data),
			size:  uint64(len(e.Data)),
			mtime: d.fs.mtime,
		}, nil
	}
	return nil, fuse.ENOENT
}

func (d *Dir) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	dirEntries := make([]fuse.Dirent, len(d.fs.order))
	for i, name := range d.fs.order {
		dirEntries[i] = fuse.Dirent{
			Inode: uint64(i + 2),
			Name:  name,
			Type:  fuse.DT_File,
		}
	}
	return dirEntries, nil
}

type File struct {
	r     io.ReaderAt
	size  uint64
	mtime time.Time
}

func (f File) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Mode = 0444
	a.Size = f.size
	a.Mtime = f.mtime
	return nil
}

func (f File) Read(ctx context.Context, req *fuse.ReadRequest, resp *fuse.ReadResponse) error {
	size := int(req.Size)
	offset := req.Offset

	if offset >= int64(f.size) {
		// Trying to read past EOF
		resp.Data = []byte{}
		return nil
	}

	// Clamp size if reading near EOF
	if offset+int64(size) > int64(f.size) {
		size = int(int64(f.size) - offset)
	}

	buf := make([]byte, size)

	n, err := f.r.ReadAt(buf, offset)
	if err != nil && err != io.EOF {
		return err
	}

	resp.Data = buf[:n]
	return nil
}
