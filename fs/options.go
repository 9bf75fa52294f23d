// Package fs provides positional, completion-based file I/O: File has no
// internal cursor, every read/write names its offset explicitly. Grounded
// on original_source/src/fs/{file,open_options}.rs.
package fs

// OpenOptions configures how Open creates or opens a file. It mirrors
// Go's os.OpenFile flag set but as a chainable builder, the way the
// original's OpenOptions wraps std::fs::OpenOptions. Open always ORs in
// the platform's overlapped-I/O flag on top of whatever is set here —
// there is no way to open a File that isn't IOCP-capable.
type OpenOptions struct {
	read        bool
	write       bool
	create      bool
	createNew   bool
	truncate    bool
	append      bool
	customFlags uint32
}

// NewOpenOptions returns a blank builder; every option starts false.
func NewOpenOptions() *OpenOptions { return &OpenOptions{} }

// Read sets whether the file should be readable once opened.
func (o *OpenOptions) Read(v bool) *OpenOptions { o.read = v; return o }

// Write sets whether the file should be writable once opened.
func (o *OpenOptions) Write(v bool) *OpenOptions { o.write = v; return o }

// Create creates the file if it doesn't exist; requires Write.
func (o *OpenOptions) Create(v bool) *OpenOptions { o.create = v; return o }

// CreateNew fails if the file already exists, atomically. When set,
// Create and Truncate are ignored, matching the original's behavior.
func (o *OpenOptions) CreateNew(v bool) *OpenOptions { o.createNew = v; return o }

// Truncate truncates an existing file to zero length; requires Write.
func (o *OpenOptions) Truncate(v bool) *OpenOptions { o.truncate = v; return o }

// Append opens the file so every write lands at the current end of file,
// regardless of the position passed to WriteAt, by requesting
// FILE_APPEND_DATA access instead of plain GENERIC_WRITE. Takes priority
// over Write when both are set.
func (o *OpenOptions) Append(v bool) *OpenOptions { o.append = v; return o }

// CustomFlags ORs extra bits into CreateFile's dwFlagsAndAttributes
// alongside the FILE_FLAG_OVERLAPPED this package always sets, mirroring
// the original's custom_flags escape hatch for callers who need a flag
// this builder doesn't otherwise expose (e.g. FILE_FLAG_WRITE_THROUGH).
func (o *OpenOptions) CustomFlags(flags uint32) *OpenOptions { o.customFlags = flags; return o }
