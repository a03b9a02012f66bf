package mocks

import (
	"context"

	"itinera/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockPlannerService struct {
	mock.Mock
}

func (m *MockPlannerService) GenerateItinerary(ctx context.Context, req model.ItineraryRequest) (*model.ItineraryResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ItineraryResponse), args.Error(1)
}

func (m *MockPlannerService) GeneratePlaces(ctx context.Context, req model.ItineraryPlacesRequest) (*model.ItineraryPlacesResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ItineraryPlacesResponse), args.Error(1)
}

func (m *MockPlannerService) Chat(ctx context.Context, message string) (*model.ChatResponse, error) {
	args := m.Called(ctx, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChatResponse), args.Error(1)
}

func (m *MockPlannerService) ListPlans(ctx context.Context) ([]model.TravelPlanRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TravelPlanRecord), args.Error(1)
}

func (m *MockPlannerService) CreatePlan(ctx context.Context, plan model.TravelPlan) (*model.TravelPlanRecord, error) {
	args := m.Called(ctx, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TravelPlanRecord), args.Error(1)
}

func (m *MockPlannerService) GetPlan(ctx context.Context, id string) (*model.TravelPlanRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TravelPlanRecord), args.Error(1)
}

func (m *MockPlannerService) PopularDestinations() []model.Destination {
	args := m.Called()
	return args.Get(0).([]model.Destination)
}

func (m *MockPlannerService) AddDestination(d model.Destination) (model.Destination, error) {
	args := m.Called(d)
	return args.Get(0).(model.Destination), args.Error(1)
}

type MockTravelService struct {
	mock.Mock
}

func (m *MockTravelService) TravelOptions(ctx context.Context, req model.TravelOptionsRequest) (*model.TravelOptionsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TravelOptionsResponse), args.Error(1)
}

func (m *MockTravelService) FoodOptions(ctx context.Context, req model.FoodOptionsRequest) (*model.FoodOptionsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FoodOptionsResponse), args.Error(1)
}

type MockDestinationTaskService struct {
	mock.Mock
}

func (m *MockDestinationTaskService) Process(ctx context.Context, destinations []model.DestinationRequest) (*model.Task, error) {
	args := m.Called(ctx, destinations)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockDestinationTaskService) Status(ctx context.Context, id string) (*model.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockDestinationTaskService) Wait() {
	m.Called()
}

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) ListUsers(ctx context.Context) ([]model.UserRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserRecord), args.Error(1)
}

func (m *MockAccountService) CreateUser(ctx context.Context, user model.User) (*model.UserRecord, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserRecord), args.Error(1)
}

func (m *MockAccountService) Profile(ctx context.Context) model.Profile {
	args := m.Called(ctx)
	return args.Get(0).(model.Profile)
}

func (m *MockAccountService) UpdateProfile(ctx context.Context, fields map[string]any) map[string]any {
	args := m.Called(ctx, fields)
	return args.Get(0).(map[string]any)
}
