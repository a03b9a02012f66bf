package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"itinera/internal/config"
	"itinera/internal/llm"
	"itinera/internal/model"
	"itinera/internal/prompt"
	"itinera/internal/repository"
	"itinera/internal/storage"
	"itinera/internal/tripquery"
)

var (
	ErrIDRequired     = errors.New("id is required")
	ErrPlanNotFound   = errors.New("travel plan not found")
	ErrMessageMissing = errors.New("message is required")
)

// StaticPrefix is the URL prefix under which stored images are served.
const StaticPrefix = "/static/"

const placeImageWorkers = 4

var popularDestinations = []model.Destination{
	{Name: "Paris", Country: "France", Description: "City of Light"},
	{Name: "Tokyo", Country: "Japan", Description: "Modern metropolis"},
	{Name: "Bali", Country: "Indonesia", Description: "Tropical paradise"},
	{Name: "New York", Country: "USA", Description: "The Big Apple"},
}

// PlannerService generates itineraries and manages saved travel plans.
type PlannerService interface {
	// GenerateItinerary returns a day-by-day plan. Generation failures yield an empty
	// plan echoing the request rather than an error; only invalid requests fail.
	GenerateItinerary(ctx context.Context, req model.ItineraryRequest) (*model.ItineraryResponse, error)
	// GeneratePlaces returns non day-wise place cards for a destination.
	GeneratePlaces(ctx context.Context, req model.ItineraryPlacesRequest) (*model.ItineraryPlacesResponse, error)
	// Chat parses a free-text trip request and plans it.
	Chat(ctx context.Context, message string) (*model.ChatResponse, error)

	ListPlans(ctx context.Context) ([]model.TravelPlanRecord, error)
	CreatePlan(ctx context.Context, plan model.TravelPlan) (*model.TravelPlanRecord, error)
	GetPlan(ctx context.Context, id string) (*model.TravelPlanRecord, error)
	PopularDestinations() []model.Destination
	AddDestination(d model.Destination) (model.Destination, error)
}

type plannerService struct {
	gen    llm.Generator
	store  storage.Storage
	plans  repository.PlanRepository
	images config.ImageConfig
	log    *zap.Logger
}

// NewPlannerService constructs a PlannerService. store may be nil when images are disabled.
func NewPlannerService(gen llm.Generator, store storage.Storage, plans repository.PlanRepository, images config.ImageConfig, log *zap.Logger) PlannerService {
	if log == nil {
		log = zap.NewNop()
	}
	if store == nil {
		images.Enabled = false
	}
	return &plannerService{gen: gen, store: store, plans: plans, images: images, log: log}
}

func (s *plannerService) GenerateItinerary(ctx context.Context, req model.ItineraryRequest) (*model.ItineraryResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	s.log.Info("generating itinerary",
		zap.String("home_city", req.HomeCity),
		zap.String("destination_city", req.DestinationCity),
		zap.Int("num_days", req.NumDays))

	var out model.ItineraryResponse
	err := s.gen.GenerateJSON(ctx, llm.JSONRequest{
		System: prompt.ItinerarySystem,
		Prompt: prompt.Itinerary(req),
		Schema: prompt.ItinerarySchema(),
	}, &out)
	if err != nil {
		s.log.Warn("itinerary generation failed, returning default", zap.Error(err))
		return model.DefaultItinerary(req), nil
	}
	out.Sanitize()

	if s.images.Enabled {
		s.attachItineraryImages(ctx, req.DestinationCity, &out)
	}
	return &out, nil
}

// attachItineraryImages generates photos for the first MaxEntities entities that have prompts,
// one entity at a time with Throttle between them.
func (s *plannerService) attachItineraryImages(ctx context.Context, destination string, out *model.ItineraryResponse) {
	var targets []*model.ItineraryEntity
	for d := range out.Days {
		for e := range out.Days[d].Entities {
			if len(out.Days[d].Entities[e].PhotoPrompts) > 0 {
				targets = append(targets, &out.Days[d].Entities[e])
			}
		}
	}
	if len(targets) > s.images.MaxEntities {
		targets = targets[:s.images.MaxEntities]
	}

	prefix := "itineraries/" + Slug(destination) + "/"
	for i, entity := range targets {
		if i > 0 && s.images.Throttle > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(s.images.Throttle):
			}
		}
		entity.ImageURLs = s.renderImages(ctx, prefix+slugOr(entity.Name, "entity"), entity.PhotoPrompts)
	}
}

func (s *plannerService) GeneratePlaces(ctx context.Context, req model.ItineraryPlacesRequest) (*model.ItineraryPlacesResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.ItineraryPlacesResponse
	err := s.gen.GenerateJSON(ctx, llm.JSONRequest{
		System: prompt.PlacesSystem,
		Prompt: prompt.Places(req),
		Schema: prompt.PlacesSchema(),
	}, &out)
	if err != nil {
		s.log.Warn("place generation failed, returning default", zap.Error(err))
		out = model.ItineraryPlacesResponse{DestinationCity: req.DestinationCity}
	}
	if out.DestinationCity == "" {
		out.DestinationCity = req.DestinationCity
	}
	out.Sanitize()

	if s.images.Enabled && len(out.Places) > 0 {
		prefix := "itineraries/" + Slug(req.DestinationCity) + "/places/"
		var g errgroup.Group
		g.SetLimit(placeImageWorkers)
		for i := range out.Places {
			card := &out.Places[i]
			if len(card.PhotoPrompts) == 0 {
				continue
			}
			g.Go(func() error {
				card.ImageURLs = s.renderImages(ctx, prefix+slugOr(card.PlaceName, "place"), card.PhotoPrompts)
				return nil
			})
		}
		_ = g.Wait()
	}
	return &out, nil
}

// renderImages generates up to MaxPerEntity images, stores them under base_<prompt>_<part><ext>
// and returns their served URLs. Any failure yields an empty list.
func (s *plannerService) renderImages(ctx context.Context, base string, prompts []string) []string {
	if len(prompts) > s.images.MaxPerEntity {
		prompts = prompts[:s.images.MaxPerEntity]
	}
	urls := []string{}
	imgs, err := s.gen.GenerateImages(ctx, prompts)
	if err != nil {
		s.log.Warn("image generation failed", zap.String("key", base), zap.Error(err))
		return urls
	}
	for _, img := range imgs {
		key := fmt.Sprintf("%s_%d_%d%s", base, img.PromptIndex, img.PartIndex, storage.ExtensionFor(img.MIMEType))
		info, err := s.store.Put(ctx, key, bytes.NewReader(img.Data), storage.PutObjectOptions{
			Size:        int64(len(img.Data)),
			ContentType: img.MIMEType,
		})
		if err != nil {
			s.log.Warn("store image failed", zap.String("key", key), zap.Error(err))
			continue
		}
		urls = append(urls, StaticPrefix+info.Key)
	}
	return urls
}

func (s *plannerService) Chat(ctx context.Context, message string) (*model.ChatResponse, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrMessageMissing
	}
	query := tripquery.Parse(message)
	itinerary, err := s.GenerateItinerary(ctx, query)
	if err != nil {
		return nil, err
	}
	return &model.ChatResponse{Query: query, Itinerary: itinerary}, nil
}

func (s *plannerService) ListPlans(ctx context.Context) ([]model.TravelPlanRecord, error) {
	plans, err := s.plans.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return plans, nil
}

func (s *plannerService) CreatePlan(ctx context.Context, plan model.TravelPlan) (*model.TravelPlanRecord, error) {
	plan.Normalize()
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	rec, err := s.plans.Create(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}
	return rec, nil
}

func (s *plannerService) GetPlan(ctx context.Context, id string) (*model.TravelPlanRecord, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrIDRequired
	}
	rec, err := s.plans.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *plannerService) PopularDestinations() []model.Destination {
	return append([]model.Destination{}, popularDestinations...)
}

func (s *plannerService) AddDestination(d model.Destination) (model.Destination, error) {
	if err := d.Validate(); err != nil {
		return model.Destination{}, err
	}
	return d, nil
}

// Slug lower-cases s and replaces spaces and path separators with dashes.
func Slug(s string) string {
	r := strings.NewReplacer(" ", "-", "/", "-", "\\", "-")
	return r.Replace(strings.ToLower(strings.TrimSpace(s)))
}

func slugOr(s, fallback string) string {
	if v := Slug(s); v != "" {
		return v
	}
	return fallback
}
