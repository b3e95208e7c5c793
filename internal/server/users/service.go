// Package users implements the filesystem credential store. Each user owns
// one directory under the upload root holding a single JSON record file;
// the record is the sole source of truth for authentication.
package users

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dmitrijs2005/pastekeeper/internal/common"
)

// Service persists and verifies username/password records rooted at a single
// upload directory. Mutating operations on the same username are serialized
// with a per-username lock; reads are lock-free.
type Service struct {
	root string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService constructs a credential store over the given upload root.
func NewService(root string) *Service {
	return &Service{
		root:  root,
		locks: make(map[string]*sync.Mutex),
	}
}

// Bootstrap ensures the upload root and the anonymous namespace directory
// exist. Must be called once before the store serves requests.
func (s *Service) Bootstrap() error {
	dir := filepath.Join(s.root, AnonymousUsername)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating anonymous namespace %s: %w", dir, err)
	}
	return nil
}

// ValidUsername reports whether username is safe to use as a directory name.
// The same 62-symbol alphabet used for paste identifiers applies: anything
// else could escape the upload root.
func ValidUsername(username string) bool {
	if username == "" {
		return false
	}
	for _, c := range username {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		default:
			return false
		}
	}
	return true
}

// Register creates a record for a new user. It fails with
// ErrPasswordsDontMatch on a confirmation mismatch, ErrInvalidUsername on a
// username outside the allowed alphabet, and ErrUserExists if the user's
// directory already exists. A record write failure removes the just-created
// directory and reports ErrRegistrationFailed, so no half-initialized
// account is left behind.
func (s *Service) Register(username, password, confirmPassword string) error {
	if password != confirmPassword {
		return common.ErrPasswordsDontMatch
	}
	if !ValidUsername(username) {
		return common.ErrInvalidUsername
	}

	unlock := s.lockUser(username)
	defer unlock()

	dir := s.userDir(username)
	if _, err := os.Stat(dir); err == nil {
		return common.ErrUserExists
	}

	if err := os.Mkdir(dir, 0o750); err != nil {
		return fmt.Errorf("%w: creating user directory: %v", common.ErrRegistrationFailed, err)
	}

	if err := s.writeRecord(User{Username: username, Password: password}); err != nil {
		_ = os.RemoveAll(dir)
		return fmt.Errorf("%w: %v", common.ErrRegistrationFailed, err)
	}

	return nil
}

// Login verifies the password for username and returns the stored record.
// Unknown usernames, unreadable or corrupt records, and password mismatches
// all fail uniformly with ErrIncorrectCredentials so error content cannot be
// used to enumerate accounts.
func (s *Service) Login(username, password string) (User, error) {
	if !ValidUsername(username) {
		return User{}, common.ErrIncorrectCredentials
	}

	user, err := s.readRecord(username)
	if err != nil {
		return User{}, common.ErrIncorrectCredentials
	}

	if !passwordsEqual(user.Password, password) {
		return User{}, common.ErrIncorrectCredentials
	}

	return user, nil
}

// Get resolves the record behind an already-authenticated identity. Unlike
// Login, a missing or corrupt record here means a trusted token references a
// broken account, which is an internal failure rather than a bad login
// attempt.
func (s *Service) Get(username string) (User, error) {
	if !ValidUsername(username) {
		return User{}, fmt.Errorf("%w: token references invalid username", common.ErrInternal)
	}

	user, err := s.readRecord(username)
	if err != nil {
		return User{}, fmt.Errorf("%w: reading account record: %v", common.ErrInternal, err)
	}

	return user, nil
}

// ChangePassword verifies oldPassword against the current record and
// persists the new password. A mismatch fails with ErrIncorrectCredentials.
// The updated record is returned.
func (s *Service) ChangePassword(user User, oldPassword, newPassword string) (User, error) {
	unlock := s.lockUser(user.Username)
	defer unlock()

	if !passwordsEqual(user.Password, oldPassword) {
		return User{}, common.ErrIncorrectCredentials
	}

	updated := User{Username: user.Username, Password: newPassword}
	if err := s.writeRecord(updated); err != nil {
		return User{}, fmt.Errorf("%w: saving record: %v", common.ErrInternal, err)
	}

	return updated, nil
}

// lockUser acquires the mutex for username, creating it on first use, and
// returns the corresponding unlock function.
func (s *Service) lockUser(username string) func() {
	s.mu.Lock()
	l, ok := s.locks[username]
	if !ok {
		l = &sync.Mutex{}
		s.locks[username] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func (s *Service) userDir(username string) string {
	return filepath.Join(s.root, username)
}

func (s *Service) credentialsPath(username string) string {
	return filepath.Join(s.userDir(username), CredentialsFileName)
}

func (s *Service) readRecord(username string) (User, error) {
	data, err := os.ReadFile(s.credentialsPath(username))
	if err != nil {
		return User{}, err
	}

	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return User{}, err
	}

	return user, nil
}

// writeRecord persists the record through a temp file and rename, so a
// concurrent reader never observes a partially written file.
func (s *Service) writeRecord(user User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	dir := s.userDir(user.Username)
	tmp, err := os.CreateTemp(dir, CredentialsFileName+".tmp*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), s.credentialsPath(user.Username)); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	return nil
}

func passwordsEqual(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
