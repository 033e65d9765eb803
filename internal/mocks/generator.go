package mocks

import (
	"context"
	"sync"

	"github.com/jvanloon/bingo-api/internal/domain"
	"github.com/jvanloon/bingo-api/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// DetectSubjectFn allows test cases to mock the DetectSubject behavior
	DetectSubjectFn func(ctx context.Context, topic string, image *domain.ImageData) (domain.SubjectContext, error)

	// GenerateItemsFn allows test cases to mock the GenerateItems behavior
	GenerateItemsFn func(ctx context.Context, req generation.ItemRequest) ([]domain.BingoItem, error)

	// Default response values
	Subject    domain.SubjectContext
	Items      []domain.BingoItem
	SubjectErr error
	ItemsErr   error

	// Call tracking for verification
	DetectSubjectCalls struct {
		mu     sync.Mutex
		Count  int
		Topics []string
		Images []*domain.ImageData
	}

	GenerateItemsCalls struct {
		mu       sync.Mutex
		Count    int
		Requests []generation.ItemRequest
	}
}

var _ generation.Generator = (*MockGenerator)(nil)

// DetectSubject implements the generation.SubjectDetector interface
func (m *MockGenerator) DetectSubject(
	ctx context.Context,
	topic string,
	image *domain.ImageData,
) (domain.SubjectContext, error) {
	m.DetectSubjectCalls.mu.Lock()
	m.DetectSubjectCalls.Count++
	m.DetectSubjectCalls.Topics = append(m.DetectSubjectCalls.Topics, topic)
	m.DetectSubjectCalls.Images = append(m.DetectSubjectCalls.Images, image)
	m.DetectSubjectCalls.mu.Unlock()

	if m.DetectSubjectFn != nil {
		return m.DetectSubjectFn(ctx, topic, image)
	}

	if m.SubjectErr != nil {
		return domain.SubjectContext{}, m.SubjectErr
	}
	if m.Subject == (domain.SubjectContext{}) {
		return domain.FallbackSubjectContext(), nil
	}
	return m.Subject, nil
}

// GenerateItems implements the generation.ItemGenerator interface
func (m *MockGenerator) GenerateItems(
	ctx context.Context,
	req generation.ItemRequest,
) ([]domain.BingoItem, error) {
	m.GenerateItemsCalls.mu.Lock()
	m.GenerateItemsCalls.Count++
	m.GenerateItemsCalls.Requests = append(m.GenerateItemsCalls.Requests, req)
	m.GenerateItemsCalls.mu.Unlock()

	if m.GenerateItemsFn != nil {
		return m.GenerateItemsFn(ctx, req)
	}

	return m.Items, m.ItemsErr
}

// NewMockGeneratorWithItems creates a MockGenerator that returns the given
// subject and items.
func NewMockGeneratorWithItems(subject domain.SubjectContext, items []domain.BingoItem) *MockGenerator {
	return &MockGenerator{
		Subject: subject,
		Items:   items,
	}
}

// MockGeneratorThatFails creates a MockGenerator whose item generation fails
func MockGeneratorThatFails() *MockGenerator {
	return &MockGenerator{
		ItemsErr: generation.ErrGenerationFailed,
	}
}

// Reset resets the call tracking state
func (m *MockGenerator) Reset() {
	m.DetectSubjectCalls.mu.Lock()
	m.DetectSubjectCalls.Count = 0
	m.DetectSubjectCalls.Topics = nil
	m.DetectSubjectCalls.Images = nil
	m.DetectSubjectCalls.mu.Unlock()

	m.GenerateItemsCalls.mu.Lock()
	m.GenerateItemsCalls.Count = 0
	m.GenerateItemsCalls.Requests = nil
	m.GenerateItemsCalls.mu.Unlock()
}
