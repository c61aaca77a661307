package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Users        []seedUser        `yaml:"users"`
	Rooms        []seedRoom        `yaml:"rooms"`
	Reservations []seedReservation `yaml:"reservations"`
}

type seedUser struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Staff    bool   `yaml:"staff"`
}

type seedRoom struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
	Capacity int    `yaml:"capacity"`
}

type seedReservation struct {
	User  string `yaml:"user"`
	Room  string `yaml:"room"`
	Date  string `yaml:"date"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

func parseSeed(r io.Reader) (*seedFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f seedFile
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	for i, res := range f.Reservations {
		if res.User == "" || res.Room == "" {
			return nil, fmt.Errorf("reservation %d: user and room are required", i)
		}
	}
	return &f, nil
}

type summary struct {
	Users        int
	Rooms        int
	Reservations int
	Skipped      int
}

type seeder struct {
	users        commands.UserCommands
	rooms        commands.RoomCommands
	reservations commands.ReservationCommands
	userQueries  queries.UserQueries
	roomQueries  queries.RoomQueries
	logger       *slog.Logger
}

// seedActor is a staff identity that owns no rows.
var seedActor = shared.Actor{UserID: uuid.Nil, IsStaff: true}

func (s *seeder) Seed(ctx context.Context, f *seedFile) (summary, error) {
	var sum summary

	for _, u := range f.Users {
		_, err := s.users.Create(ctx, seedActor, commands.CreateUserInput{
			RegisterInput: commands.RegisterInput{
				Username:  u.Username,
				Email:     u.Email,
				Password1: u.Password,
				Password2: u.Password,
			},
			IsStaff: u.Staff,
		})
		switch {
		case err == nil:
			sum.Users++
		case errs.Is(err, commands.ErrDuplicateUsername):
			sum.Skipped++
		default:
			return sum, fmt.Errorf("user %q: %w", u.Username, err)
		}
	}

	roomIDs, err := s.roomsByName(ctx)
	if err != nil {
		return sum, err
	}
	for _, r := range f.Rooms {
		if _, ok := roomIDs[r.Name]; ok {
			sum.Skipped++
			continue
		}
		id, err := s.rooms.Create(ctx, seedActor, commands.CreateRoomInput{Name: r.Name, Location: r.Location, Capacity: r.Capacity})
		if err != nil {
			return sum, fmt.Errorf("room %q: %w", r.Name, err)
		}
		roomIDs[r.Name] = id
		sum.Rooms++
	}

	userIDs, err := s.usersByName(ctx)
	if err != nil {
		return sum, err
	}
	for _, res := range f.Reservations {
		in, err := res.input(roomIDs)
		if err != nil {
			return sum, err
		}
		ownerID, ok := userIDs[res.User]
		if !ok {
			return sum, fmt.Errorf("reservation for unknown user %q", res.User)
		}
		_, err = s.reservations.AdminCreate(ctx, seedActor, ownerID, in)
		switch {
		case err == nil:
			sum.Reservations++
		case errs.Is(err, commands.ErrSlotTaken):
			sum.Skipped++
		default:
			return sum, fmt.Errorf("reservation %s %s-%s in %q: %w", res.Date, res.Start, res.End, res.Room, err)
		}
	}
	return sum, nil
}

func (r seedReservation) input(roomIDs map[string]uuid.UUID) (commands.ReservationInput, error) {
	roomID, ok := roomIDs[r.Room]
	if !ok {
		return commands.ReservationInput{}, fmt.Errorf("reservation in unknown room %q", r.Room)
	}
	date, err := reservation.ParseDate(r.Date)
	if err != nil {
		return commands.ReservationInput{}, err
	}
	start, err := reservation.ParseTimeOfDay(r.Start)
	if err != nil {
		return commands.ReservationInput{}, err
	}
	end, err := reservation.ParseTimeOfDay(r.End)
	if err != nil {
		return commands.ReservationInput{}, err
	}
	return commands.ReservationInput{RoomID: roomID, Date: date, Start: start, End: end}, nil
}

func (s *seeder) roomsByName(ctx context.Context) (map[string]uuid.UUID, error) {
	rooms, err := s.roomQueries.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]uuid.UUID, len(rooms))
	for _, r := range rooms {
		ids[r.Name] = r.ID
	}
	return ids, nil
}

func (s *seeder) usersByName(ctx context.Context) (map[string]uuid.UUID, error) {
	users, err := s.userQueries.List(ctx, seedActor)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]uuid.UUID, len(users))
	for _, u := range users {
		ids[u.Username] = u.ID
	}
	return ids, nil
}
