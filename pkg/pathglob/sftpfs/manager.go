// Package sftpfs expands glob patterns over sftp by exposing a remote tree
// through the glob.FS interface. Connections are pooled and reused across
// resolutions against the same host.
package sftpfs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

const (
	DefaultPort           = 22
	DefaultConnectTimeout = 10 * time.Second
	DefaultMaxIdleTime    = 5 * time.Minute
	DefaultMaxConnections = 10
	defaultCleanupEvery   = 2 * time.Minute
)

// ConnectionDetails holds what is needed to reach an sftp host.
type ConnectionDetails struct {
	Hostname       string
	Port           int
	Username       string
	Password       string
	ConnectTimeout time.Duration
}

// String returns a unique key for the connection details.
func (cd ConnectionDetails) String() string {
	return fmt.Sprintf("%s@%s:%d", cd.Username, cd.Hostname, cd.Port)
}

func (cd *ConnectionDetails) applyDefaults() {
	if cd.Port == 0 {
		cd.Port = DefaultPort
	}
	if cd.ConnectTimeout == 0 {
		cd.ConnectTimeout = DefaultConnectTimeout
	}
}

type clientInfo struct {
	client    *sftp.Client
	sshClient *ssh.Client
	lastUsed  time.Time
}

// ManagerConfig holds the pool limits for a Manager.
type ManagerConfig struct {
	MaxIdleTime     time.Duration
	MaxConnections  int
	CleanupInterval time.Duration
}

// Manager pools sftp clients per connection key and closes them after they
// sit idle for too long.
type Manager struct {
	clients map[string]*clientInfo
	mu      sync.Mutex
	config  ManagerConfig
	done    chan struct{}
}

// NewManager creates a Manager with the given configuration, filling in
// defaults for unset fields, and starts its idle-cleanup loop.
func NewManager(config ManagerConfig) *Manager {
	if config.MaxIdleTime == 0 {
		config.MaxIdleTime = DefaultMaxIdleTime
	}
	if config.MaxConnections == 0 {
		config.MaxConnections = DefaultMaxConnections
	}
	if config.CleanupInterval == 0 {
		config.CleanupInterval = defaultCleanupEvery
	}

	m := &Manager{
		clients: make(map[string]*clientInfo),
		config:  config,
		done:    make(chan struct{}),
	}
	go m.cleanup()
	return m
}

var (
	globalManager *Manager
	once          sync.Once
)

// GetGlobalManager returns the process-wide Manager, creating it on first
// use.
func GetGlobalManager() *Manager {
	once.Do(func() {
		globalManager = NewManager(ManagerConfig{})
	})
	return globalManager
}

// Connect is a convenience wrapper that opens a Tree through the global
// manager.
func Connect(ctx context.Context, details ConnectionDetails) (*Tree, error) {
	return GetGlobalManager().Connect(ctx, details)
}

// Connect returns a Tree rooted at the remote filesystem for the given
// connection details, reusing a pooled client when one is alive.
func (m *Manager) Connect(ctx context.Context, details ConnectionDetails) (*Tree, error) {
	details.applyDefaults()
	key := details.String()

	if client, ok := m.getExistingClient(key); ok {
		return &Tree{client: client}, nil
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	client, err := m.dial(details)
	if err != nil {
		return nil, err
	}
	return &Tree{client: client}, nil
}

func (m *Manager) getExistingClient(key string) (*sftp.Client, bool) {
	m.mu.Lock()
	info, exists := m.clients[key]
	if exists {
		info.lastUsed = time.Now()
	}
	m.mu.Unlock()

	if !exists {
		return nil, false
	}

	// Probe the connection; drop it from the pool if it died.
	if _, err := info.client.Getwd(); err != nil {
		m.mu.Lock()
		delete(m.clients, key)
		m.mu.Unlock()
		info.client.Close()
		info.sshClient.Close()
		return nil, false
	}
	return info.client, true
}

func (m *Manager) dial(details ConnectionDetails) (*sftp.Client, error) {
	m.mu.Lock()
	if len(m.clients) >= m.config.MaxConnections {
		m.mu.Unlock()
		return nil, fmt.Errorf("connection pool limit reached (%d)", m.config.MaxConnections)
	}
	m.mu.Unlock()

	sshConfig := &ssh.ClientConfig{
		User: details.Username,
		Auth: []ssh.AuthMethod{
			ssh.Password(details.Password),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), // Note: In production, use proper host key verification
		Timeout:         details.ConnectTimeout,
	}

	sshClient, err := ssh.Dial("tcp", fmt.Sprintf("%s:%d", details.Hostname, details.Port), sshConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to dial SSH: %v", err)
	}

	sftpClient, err := sftp.NewClient(sshClient)
	if err != nil {
		sshClient.Close()
		return nil, fmt.Errorf("failed to create SFTP client: %v", err)
	}

	m.mu.Lock()
	m.clients[details.String()] = &clientInfo{
		client:    sftpClient,
		sshClient: sshClient,
		lastUsed:  time.Now(),
	}
	m.mu.Unlock()

	return sftpClient, nil
}

func (m *Manager) cleanup() {
	ticker := time.NewTicker(m.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.mu.Lock()
			for key, info := range m.clients {
				if time.Since(info.lastUsed) > m.config.MaxIdleTime {
					info.client.Close()
					info.sshClient.Close()
					delete(m.clients, key)
				}
			}
			m.mu.Unlock()
		}
	}
}

// Close shuts down the cleanup loop and closes every pooled connection.
func (m *Manager) Close() {
	close(m.done)

	m.mu.Lock()
	defer m.mu.Unlock()
	for key, info := range m.clients {
		info.client.Close()
		info.sshClient.Close()
		delete(m.clients, key)
	}
}
