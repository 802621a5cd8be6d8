package config

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteProvider implements ConfigProvider for SQLite database configuration
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteProvider creates a new SQLite configuration provider
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return &SQLiteProvider{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// LoadConfig loads the complete configuration from the SQLite database
func (s *SQLiteProvider) LoadConfig() (*ConfigData, error) {
	config := &ConfigData{}

	feed, err := s.GetFeed()
	if err != nil {
		return nil, fmt.Errorf("failed to load feed config: %w", err)
	}
	config.Feed = *feed

	dashboard, err := s.GetDashboard()
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard config: %w", err)
	}
	config.Dashboard = *dashboard

	return config, nil
}

// GetFeed returns the feed configuration from the database
func (s *SQLiteProvider) GetFeed() (*FeedData, error) {
	query := `
		SELECT url
		FROM feed
		WHERE config_id = (SELECT id FROM configs WHERE name = 'default')
	`

	var feedURL sql.NullString
	if err := s.db.QueryRow(query).Scan(&feedURL); err != nil {
		if err == sql.ErrNoRows {
			return &FeedData{}, nil
		}
		return nil, fmt.Errorf("failed to query feed config: %w", err)
	}

	return &FeedData{URL: feedURL.String}, nil
}

// GetDashboard returns the dashboard configuration from the database
func (s *SQLiteProvider) GetDashboard() (*DashboardData, error) {
	query := `
		SELECT listen_addr, port, tls_cert_path, tls_key_path, page_title
		FROM dashboard
		WHERE config_id = (SELECT id FROM configs WHERE name = 'default')
	`

	var (
		listenAddr  sql.NullString
		port        sql.NullInt64
		tlsCertPath sql.NullString
		tlsKeyPath  sql.NullString
		pageTitle   sql.NullString
	)
	if err := s.db.QueryRow(query).Scan(&listenAddr, &port, &tlsCertPath, &tlsKeyPath, &pageTitle); err != nil {
		if err == sql.ErrNoRows {
			return &DashboardData{}, nil
		}
		return nil, fmt.Errorf("failed to query dashboard config: %w", err)
	}

	return &DashboardData{
		ListenAddr:  listenAddr.String,
		Port:        int(port.Int64),
		TLSCertPath: tlsCertPath.String,
		TLSKeyPath:  tlsKeyPath.String,
		PageTitle:   pageTitle.String,
	}, nil
}

// IsReadOnly returns false; SQLite configurations can be managed in place
func (s *SQLiteProvider) IsReadOnly() bool {
	return false
}

// Close closes the database connection
func (s *SQLiteProvider) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
