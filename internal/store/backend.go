package store

// Backend persists whole documents by key. Every write replaces the full
// document; there is no append path and no locking.
type Backend interface {
	// Load returns ok=false when the document does not exist.
	Load(key string) (data []byte, ok bool, err error)
	Save(key string, data []byte) error
	// Ensure creates the document with initial when it does not exist.
	Ensure(key string, initial []byte) error
}

// Paths names the two documents. For the file backend they are file paths,
// for database backends they are row names.
type Paths struct {
	ExamStorePath     string
	ProgressStorePath string
}

var (
	emptyExams    = []byte("[]")
	emptyProgress = []byte("{}")
)

// Bootstrap creates both documents empty on first run.
func Bootstrap(b Backend, paths Paths) error {
	if err := b.Ensure(paths.ExamStorePath, emptyExams); err != nil {
		return err
	}
	return b.Ensure(paths.ProgressStorePath, emptyProgress)
}
