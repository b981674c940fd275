package download

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/astroview/apod-viewer/internal/platform"
)

// Transfer timing constants
const (
	TransferTimeout = 5 * time.Minute
)

// TransferStatus represents the internal state of one transfer attempt
type TransferStatus string

const (
	TransferStatusRunning   TransferStatus = "Running"
	TransferStatusCompleted TransferStatus = "Completed"
	TransferStatusError     TransferStatus = "Error"
)

// Transfer records one file transfer attempt. It is bookkeeping internal to
// the service; the screen that triggered it never reads it back.
type Transfer struct {
	ID         string
	URL        string
	Status     TransferStatus
	OutputPath string
	LastError  string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Service copies remote files to the save directory. Every StartTransfer call
// begins an independent attempt: there is no de-duplication, no parallelism
// cap and no completion signal back to the caller.
type Service struct {
	transfers      map[string]*Transfer
	transfersMutex sync.RWMutex
	saveDir        string
	httpClient     *http.Client
	onUpdate       func(*Transfer) // callback for logging/observation
}

// NewService creates a new transfer service saving into saveDir
func NewService(saveDir string) *Service {
	return &Service{
		transfers: make(map[string]*Transfer),
		saveDir:   saveDir,
		httpClient: &http.Client{
			Timeout: TransferTimeout,
		},
	}
}

// SetUpdateCallback sets the callback invoked on transfer state changes
func (s *Service) SetUpdateCallback(callback func(*Transfer)) {
	s.onUpdate = callback
}

// SetSaveDirectory sets the directory transfers are written into
func (s *Service) SetSaveDirectory(dir string) {
	s.transfersMutex.Lock()
	defer s.transfersMutex.Unlock()
	s.saveDir = dir
}

// StartTransfer begins an asynchronous transfer of the given URL and returns
// immediately. Repeated calls with the same URL each start a fresh attempt.
func (s *Service) StartTransfer(url string) {
	transfer := &Transfer{
		ID:        generateTransferID(),
		URL:       url,
		Status:    TransferStatusRunning,
		StartedAt: time.Now(),
	}

	s.transfersMutex.Lock()
	s.transfers[transfer.ID] = transfer
	s.transfersMutex.Unlock()

	log.Printf("Transfer %s started for URL: %s", transfer.ID, url)
	s.notifyUpdate(transfer)

	go s.runTransfer(transfer)
}

// GetTransfer returns a transfer by ID
func (s *Service) GetTransfer(id string) (*Transfer, bool) {
	s.transfersMutex.RLock()
	defer s.transfersMutex.RUnlock()
	transfer, exists := s.transfers[id]
	return transfer, exists
}

// GetAllTransfers returns all transfer records
func (s *Service) GetAllTransfers() []*Transfer {
	s.transfersMutex.RLock()
	defer s.transfersMutex.RUnlock()

	transfers := make([]*Transfer, 0, len(s.transfers))
	for _, transfer := range s.transfers {
		transfers = append(transfers, transfer)
	}
	return transfers
}

// runTransfer performs the HTTP copy and records the outcome
func (s *Service) runTransfer(transfer *Transfer) {
	outputPath, err := s.copyToDisk(transfer)

	s.transfersMutex.Lock()
	if err != nil {
		transfer.Status = TransferStatusError
		transfer.LastError = err.Error()
		log.Printf("Transfer %s failed: %v", transfer.ID, err)
	} else {
		transfer.Status = TransferStatusCompleted
		transfer.OutputPath = outputPath
		log.Printf("Transfer %s completed: %s", transfer.ID, outputPath)
	}
	transfer.FinishedAt = time.Now()
	s.transfersMutex.Unlock()

	s.notifyUpdate(transfer)
}

// copyToDisk streams the remote file into the save directory
func (s *Service) copyToDisk(transfer *Transfer) (string, error) {
	s.transfersMutex.RLock()
	saveDir := s.saveDir
	s.transfersMutex.RUnlock()

	if err := platform.CreateDirectoryIfNotExists(saveDir); err != nil {
		return "", fmt.Errorf("failed to ensure save directory: %w", err)
	}

	resp, err := s.httpClient.Get(transfer.URL)
	if err != nil {
		return "", fmt.Errorf("transfer request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("transfer request returned status %d", resp.StatusCode)
	}

	outputPath := filepath.Join(saveDir, platform.FilenameFromURL(transfer.URL))
	// Concurrent attempts for the same URL each get their own file
	if _, err := os.Stat(outputPath); err == nil {
		outputPath = filepath.Join(saveDir, shortID(transfer.ID)+"-"+platform.FilenameFromURL(transfer.URL))
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(outputPath)
		return "", fmt.Errorf("failed to write output file: %w", err)
	}

	return outputPath, nil
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(transfer *Transfer) {
	if s.onUpdate != nil {
		s.onUpdate(transfer)
	}
}

// generateTransferID generates a unique transfer ID
func generateTransferID() string {
	return "transfer-" + uuid.NewString()
}

// shortID returns a compact file name prefix derived from a transfer ID
func shortID(id string) string {
	const prefixLen = len("transfer-") + 8
	if len(id) > prefixLen {
		return id[len("transfer-"):prefixLen]
	}
	return id
}
