package services

import (
	"context"
	"errors"
	"testing"

	"github.com/scholarstream/scholarstream/internal/app/models"
	"github.com/scholarstream/scholarstream/internal/app/repositories"
	"github.com/scholarstream/scholarstream/internal/pkg/apperrors"
)

// fakeScholarshipRepo records the arguments the service hands to storage.
type fakeScholarshipRepo struct {
	scholarships []*models.Scholarship
	lastSortCol  string
	lastOffset   uint64
	lastLimit    int
	lastQuery    string
}

func (f *fakeScholarshipRepo) CreateScholarship(_ context.Context, s *models.Scholarship) (int64, error) {
	copied := *s
	copied.ID = int64(len(f.scholarships) + 1)
	f.scholarships = append(f.scholarships, &copied)
	return copied.ID, nil
}

func (f *fakeScholarshipRepo) GetScholarshipByID(_ context.Context, id int64) (*models.Scholarship, error) {
	for _, s := range f.scholarships {
		if s.ID == id {
			copied := *s
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeScholarshipRepo) ListScholarships(_ context.Context, offset uint64, limit int) ([]*models.Scholarship, error) {
	f.lastOffset = offset
	f.lastLimit = limit
	return f.scholarships, nil
}

func (f *fakeScholarshipRepo) CountScholarships(_ context.Context) (int64, error) {
	return int64(len(f.scholarships)), nil
}

func (f *fakeScholarshipRepo) ListScholarshipsSorted(_ context.Context, column string) ([]*models.Scholarship, error) {
	f.lastSortCol = column
	return f.scholarships, nil
}

func (f *fakeScholarshipRepo) SearchScholarships(_ context.Context, query string) ([]*models.Scholarship, error) {
	f.lastQuery = query
	return f.scholarships, nil
}

func (f *fakeScholarshipRepo) UpdateScholarship(_ context.Context, id int64, _ *models.ScholarshipUpdate) error {
	for _, s := range f.scholarships {
		if s.ID == id {
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeScholarshipRepo) DeleteScholarship(_ context.Context, id int64) error {
	for i, s := range f.scholarships {
		if s.ID == id {
			f.scholarships = append(f.scholarships[:i], f.scholarships[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func validScholarship() *models.Scholarship {
	return &models.Scholarship{
		ScholarshipName: "Global Excellence Scholarship",
		UniversityName:  "University of Oxford",
		Degree:          "Masters",
		ApplicationFees: 50,
	}
}

func TestCreateScholarshipSetsPostDates(t *testing.T) {
	repo := &fakeScholarshipRepo{}
	svc := NewScholarshipService(repo)

	id, err := svc.CreateScholarship(context.Background(), validScholarship())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected ID 1, got %d", id)
	}

	stored := repo.scholarships[0]
	if stored.ScholarshipPostDate.IsZero() || stored.ScholarshipPostUpdateDate.IsZero() {
		t.Fatalf("expected post dates to be set")
	}
	if !stored.ScholarshipPostDate.Equal(stored.ScholarshipPostUpdateDate) {
		t.Fatalf("expected post and update dates to match on create")
	}
}

func TestCreateScholarshipRejectsEmptyName(t *testing.T) {
	svc := NewScholarshipService(&fakeScholarshipRepo{})

	s := validScholarship()
	s.ScholarshipName = "  "
	_, err := svc.CreateScholarship(context.Background(), s)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListScholarshipsSortedMapsKeysToColumns(t *testing.T) {
	cases := map[string]string{
		"scholarshipCategory": "scholarship_category",
		"universityWorldRank": "university_world_rank",
		"degree":              "degree",
		"tuitionFees":         "tuition_fees",
	}

	for key, column := range cases {
		repo := &fakeScholarshipRepo{}
		svc := NewScholarshipService(repo)

		if _, err := svc.ListScholarshipsSorted(context.Background(), key); err != nil {
			t.Fatalf("sort by %s failed: %v", key, err)
		}
		if repo.lastSortCol != column {
			t.Fatalf("sort key %s: expected column %s, got %s", key, column, repo.lastSortCol)
		}
	}
}

func TestListScholarshipsSortedRejectsUnknownKey(t *testing.T) {
	svc := NewScholarshipService(&fakeScholarshipRepo{})

	_, err := svc.ListScholarshipsSorted(context.Background(), "applicationFees; DROP TABLE scholarships")
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Fatalf("expected bad request error, got %v", err)
	}
}

func TestSearchScholarshipsRejectsEmptyQuery(t *testing.T) {
	svc := NewScholarshipService(&fakeScholarshipRepo{})

	_, err := svc.SearchScholarships(context.Background(), "   ")
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Fatalf("expected bad request error, got %v", err)
	}
	if err.Error() != "Query is required" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestListScholarshipsPagination(t *testing.T) {
	repo := &fakeScholarshipRepo{}
	svc := NewScholarshipService(repo)

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateScholarship(context.Background(), validScholarship()); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	result, err := svc.ListScholarships(context.Background(), 2, 2)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.lastOffset != 2 || repo.lastLimit != 2 {
		t.Fatalf("expected offset 2 limit 2, got %d and %d", repo.lastOffset, repo.lastLimit)
	}
	if result.Total != 3 {
		t.Fatalf("expected total 3, got %d", result.Total)
	}
	if result.TotalPages != 2 {
		t.Fatalf("expected 2 pages, got %d", result.TotalPages)
	}
}

func TestGetScholarshipByIDNotFound(t *testing.T) {
	svc := NewScholarshipService(&fakeScholarshipRepo{})

	_, err := svc.GetScholarshipByID(context.Background(), 404)
	if !errors.Is(err, apperrors.ErrScholarshipNotFound) {
		t.Fatalf("expected scholarship not found, got %v", err)
	}
}

func TestUpdateScholarshipNotFound(t *testing.T) {
	svc := NewScholarshipService(&fakeScholarshipRepo{})

	err := svc.UpdateScholarship(context.Background(), 404, &models.ScholarshipUpdate{})
	if !errors.Is(err, apperrors.ErrScholarshipNotFound) {
		t.Fatalf("expected scholarship not found, got %v", err)
	}
}
