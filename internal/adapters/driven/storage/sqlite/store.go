package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/arah-infotech/sitebot/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/arah-infotech/sitebot/internal/core/domain"
	"github.com/arah-infotech/sitebot/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to all
// content store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.sitebot/data/site.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".sitebot", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "site.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// CareerStore returns a CareerStore interface backed by this store.
func (s *Store) CareerStore() driven.CareerStore {
	return &careerStore{store: s}
}

// ProductStore returns a ProductStore interface backed by this store.
func (s *Store) ProductStore() driven.ProductStore {
	return &productStore{store: s}
}

// ContactStore returns a ContactStore interface backed by this store.
func (s *Store) ContactStore() driven.ContactStore {
	return &contactStore{store: s}
}

// ApplicationStore returns an ApplicationStore interface backed by this store.
func (s *Store) ApplicationStore() driven.ApplicationStore {
	return &applicationStore{store: s}
}

// AdminStore returns an AdminStore interface backed by this store.
func (s *Store) AdminStore() driven.AdminStore {
	return &adminStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Career Store ====================

// careerStore implements driven.CareerStore.
type careerStore struct {
	store *Store
}

var _ driven.CareerStore = (*careerStore)(nil)

// ListCareers returns openings sorted newest first.
func (s *careerStore) ListCareers(ctx context.Context, activeOnly bool) ([]domain.Career, error) {
	query := `
		SELECT id, title, department, location, type, description, active, created_at, updated_at
		FROM careers
	`
	if activeOnly {
		query += " WHERE active = 1"
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.store.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying careers: %w", err)
	}
	defer rows.Close()

	var careers []domain.Career //nolint:prealloc // size unknown from query
	for rows.Next() {
		var c domain.Career
		if err := rows.Scan(&c.ID, &c.Title, &c.Department, &c.Location, &c.Type,
			&c.Description, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning career: %w", err)
		}
		careers = append(careers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating careers: %w", err)
	}

	return careers, nil
}

// GetCareer retrieves an opening by ID.
func (s *careerStore) GetCareer(ctx context.Context, id string) (*domain.Career, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, title, department, location, type, description, active, created_at, updated_at
		FROM careers WHERE id = ?
	`, id)

	var c domain.Career
	if err := row.Scan(&c.ID, &c.Title, &c.Department, &c.Location, &c.Type,
		&c.Description, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning career: %w", err)
	}

	return &c, nil
}

// SaveCareer stores or updates an opening.
func (s *careerStore) SaveCareer(ctx context.Context, c *domain.Career) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO careers (id, title, department, location, type, description, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			department = excluded.department,
			location = excluded.location,
			type = excluded.type,
			description = excluded.description,
			active = excluded.active,
			updated_at = excluded.updated_at
	`, c.ID, c.Title, c.Department, c.Location, c.Type, c.Description, c.Active,
		c.CreatedAt, c.UpdatedAt)

	if err != nil {
		return fmt.Errorf("saving career: %w", err)
	}
	return nil
}

// DeleteCareer removes an opening and its applications.
func (s *careerStore) DeleteCareer(ctx context.Context, id string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM careers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting career: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ==================== Product Store ====================

// productStore implements driven.ProductStore.
type productStore struct {
	store *Store
}

var _ driven.ProductStore = (*productStore)(nil)

// ListProducts returns listings sorted newest first.
func (s *productStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, tagline, description, features, created_at, updated_at
		FROM products ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product //nolint:prealloc // size unknown from query
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}

	return products, nil
}

// GetProduct retrieves a listing by ID.
func (s *productStore) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, tagline, description, features, created_at, updated_at
		FROM products WHERE id = ?
	`, id)

	var p domain.Product
	var featuresJSON string
	if err := row.Scan(&p.ID, &p.Name, &p.Tagline, &p.Description, &featuresJSON,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning product: %w", err)
	}

	if err := json.Unmarshal([]byte(featuresJSON), &p.Features); err != nil {
		return nil, fmt.Errorf("unmarshaling features: %w", err)
	}

	return &p, nil
}

// SaveProduct stores or updates a listing.
func (s *productStore) SaveProduct(ctx context.Context, p *domain.Product) error {
	featuresJSON, err := json.Marshal(p.Features)
	if err != nil {
		return fmt.Errorf("marshalling features: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO products (id, name, tagline, description, features, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			tagline = excluded.tagline,
			description = excluded.description,
			features = excluded.features,
			updated_at = excluded.updated_at
	`, p.ID, p.Name, p.Tagline, p.Description, string(featuresJSON),
		p.CreatedAt, p.UpdatedAt)

	if err != nil {
		return fmt.Errorf("saving product: %w", err)
	}
	return nil
}

// DeleteProduct removes a listing.
func (s *productStore) DeleteProduct(ctx context.Context, id string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanProduct scans a product from *sql.Rows.
func scanProduct(rows *sql.Rows) (*domain.Product, error) {
	var p domain.Product
	var featuresJSON string

	if err := rows.Scan(&p.ID, &p.Name, &p.Tagline, &p.Description, &featuresJSON,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("scanning product: %w", err)
	}

	if err := json.Unmarshal([]byte(featuresJSON), &p.Features); err != nil {
		return nil, fmt.Errorf("unmarshaling features: %w", err)
	}

	return &p, nil
}

// ==================== Contact Store ====================

// contactStore implements driven.ContactStore.
type contactStore struct {
	store *Store
}

var _ driven.ContactStore = (*contactStore)(nil)

// ListContacts returns messages sorted newest first.
func (s *contactStore) ListContacts(ctx context.Context) ([]domain.ContactMessage, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, email, phone, subject, message, read, created_at
		FROM contacts ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying contacts: %w", err)
	}
	defer rows.Close()

	var contacts []domain.ContactMessage //nolint:prealloc // size unknown from query
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject,
			&m.Message, &m.Read, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}
		contacts = append(contacts, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contacts: %w", err)
	}

	return contacts, nil
}

// SaveContact stores a message.
func (s *contactStore) SaveContact(ctx context.Context, m *domain.ContactMessage) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO contacts (id, name, email, phone, subject, message, read, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.Name, m.Email, m.Phone, m.Subject, m.Message, m.Read, m.CreatedAt)

	if err != nil {
		return fmt.Errorf("saving contact: %w", err)
	}
	return nil
}

// MarkContactRead flags a message as handled.
func (s *contactStore) MarkContactRead(ctx context.Context, id string) error {
	res, err := s.store.db.ExecContext(ctx, "UPDATE contacts SET read = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("marking contact read: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteContact removes a message.
func (s *contactStore) DeleteContact(ctx context.Context, id string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM contacts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting contact: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ==================== Application Store ====================

// applicationStore implements driven.ApplicationStore.
type applicationStore struct {
	store *Store
}

var _ driven.ApplicationStore = (*applicationStore)(nil)

// ListApplications returns applications, optionally filtered by career,
// sorted newest first.
func (s *applicationStore) ListApplications(ctx context.Context, careerID string) ([]domain.JobApplication, error) {
	query := `
		SELECT id, career_id, name, email, phone, resume_url, cover_note, created_at
		FROM applications
	`
	args := []any{}
	if careerID != "" {
		query += " WHERE career_id = ?"
		args = append(args, careerID)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying applications: %w", err)
	}
	defer rows.Close()

	var apps []domain.JobApplication //nolint:prealloc // size unknown from query
	for rows.Next() {
		var a domain.JobApplication
		if err := rows.Scan(&a.ID, &a.CareerID, &a.Name, &a.Email, &a.Phone,
			&a.ResumeURL, &a.CoverNote, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning application: %w", err)
		}
		apps = append(apps, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating applications: %w", err)
	}

	return apps, nil
}

// SaveApplication stores an application.
func (s *applicationStore) SaveApplication(ctx context.Context, a *domain.JobApplication) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO applications (id, career_id, name, email, phone, resume_url, cover_note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, a.ID, a.CareerID, a.Name, a.Email, a.Phone, a.ResumeURL, a.CoverNote, a.CreatedAt)

	if err != nil {
		return fmt.Errorf("saving application: %w", err)
	}
	return nil
}

// ==================== Admin Store ====================

// adminStore implements driven.AdminStore.
type adminStore struct {
	store *Store
}

var _ driven.AdminStore = (*adminStore)(nil)

// GetAdminByEmail retrieves an admin by email (case-insensitive).
func (s *adminStore) GetAdminByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, created_at
		FROM admins WHERE email = ? COLLATE NOCASE
	`, email)

	var a domain.Admin
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning admin: %w", err)
	}

	return &a, nil
}

// SaveAdmin stores or updates an admin.
func (s *adminStore) SaveAdmin(ctx context.Context, a *domain.Admin) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO admins (id, email, password_hash, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(email) DO UPDATE SET
			password_hash = excluded.password_hash
	`, a.ID, a.Email, a.PasswordHash, a.CreatedAt)

	if err != nil {
		return fmt.Errorf("saving admin: %w", err)
	}
	return nil
}
