package feed

// Service serves the feed records fetched at startup. The record set is
// immutable after Load, so reads need no locking.
type Service interface {
	List() ([]Record, error)
	GetByID(id int) (*Record, error)
}

type service struct {
	records []Record
	byID    map[int]*Record
	loaded  bool
}

// NewService creates a feed service. Pass loaded=false when the startup
// fetch failed; the service then reports ErrUnavailable on every call.
func NewService(records []Record, loaded bool) Service {
	s := &service{
		records: records,
		byID:    make(map[int]*Record, len(records)),
		loaded:  loaded,
	}
	for i := range records {
		s.byID[records[i].ID] = &records[i]
	}
	return s
}

func (s *service) List() ([]Record, error) {
	if !s.loaded {
		return nil, ErrUnavailable
	}
	return s.records, nil
}

func (s *service) GetByID(id int) (*Record, error) {
	if !s.loaded {
		return nil, ErrUnavailable
	}
	record, ok := s.byID[id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return record, nil
}
