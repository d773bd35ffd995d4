package services

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/florv/home-helper/internal/models"
	"github.com/florv/home-helper/internal/repository"
)

var (
	ErrUnknownSearchType = errors.New("unknown search type")
	ErrEmptyQuery        = errors.New("search query is required")
)

// External engine query templates. The query string is appended
// percent-encoded.
const (
	googleQueryURL  = "https://www.google.com/search?q="
	youtubeQueryURL = "https://www.youtube.com/results?search_query="
)

// SearchResultsPath is the internal route that renders self-site results.
const SearchResultsPath = "/search/results"

// SearchService records per-user search history and resolves redirect
// targets for dispatched queries.
type SearchService struct {
	historyRepo repository.SearchHistoryRepository
	noteRepo    repository.NoteRepository
}

// NewSearchService creates a new SearchService.
func NewSearchService(historyRepo repository.SearchHistoryRepository, noteRepo repository.NoteRepository) *SearchService {
	return &SearchService{
		historyRepo: historyRepo,
		noteRepo:    noteRepo,
	}
}

// RecordSearch bumps the counter for (user, type, value), starting at 1 for
// a first-time search. The repository upsert absorbs the duplicate-insert
// race, so this never surfaces a uniqueness conflict.
func (s *SearchService) RecordSearch(userID uint64, searchType models.SearchType, value string) error {
	if !searchType.Valid() {
		return ErrUnknownSearchType
	}
	if err := s.historyRepo.Record(userID, searchType, value); err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}
	return nil
}

// Dispatch records the search and returns the redirect target: the internal
// results route for self-site searches, the engine query URL otherwise. An
// unrecognized type is a recoverable input error and records nothing.
func (s *SearchService) Dispatch(userID uint64, searchType models.SearchType, value string) (string, error) {
	if value == "" {
		return "", ErrEmptyQuery
	}
	if !searchType.Valid() {
		return "", ErrUnknownSearchType
	}

	if err := s.RecordSearch(userID, searchType, value); err != nil {
		return "", err
	}

	switch searchType {
	case models.SearchTypeSite:
		params := url.Values{}
		params.Set("query", value)
		return SearchResultsPath + "?" + params.Encode(), nil
	case models.SearchTypeGoogle:
		return googleQueryURL + url.QueryEscape(value), nil
	case models.SearchTypeYouTube:
		return youtubeQueryURL + url.QueryEscape(value), nil
	}

	return "", ErrUnknownSearchType
}

// SelfSearch returns the user's notes whose title or body contain the query.
func (s *SearchService) SelfSearch(userID uint64, query string) ([]models.Note, error) {
	notes, err := s.noteRepo.SearchByAuthor(userID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search notes: %w", err)
	}
	return notes, nil
}

// History returns the user's search history ordered by times searched.
func (s *SearchService) History(userID uint64) ([]models.SearchHistory, error) {
	entries, err := s.historyRepo.ListByAuthor(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list search history: %w", err)
	}
	return entries, nil
}
