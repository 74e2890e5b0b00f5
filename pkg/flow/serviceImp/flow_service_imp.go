package serviceImp

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"

	"vitisense/entities"
	farmSvc "vitisense/pkg/farm/service"
	"vitisense/pkg/flow/service"
	"vitisense/pkg/geo"
	"vitisense/pkg/session"
)

// GuestOwner owns the saved farms of a sign-in without an email.
const GuestOwner = "guest"

type flowSvc struct {
	farms    farmSvc.FarmService
	validate *validator.Validate
}

func NewFlowService(farms farmSvc.FarmService) service.FlowService {
	return &flowSvc{farms: farms, validate: newValidator()}
}

func ownerFor(email string) string {
	o := strings.ToLower(strings.TrimSpace(email))
	if o == "" {
		return GuestOwner
	}
	return o
}

func (f *flowSvc) SignIn(s *session.Session, email string) error {
	owner := ownerFor(email)
	saved := f.farms.LoadAll(owner)
	return s.Update(func(d *session.Data) error {
		s.ResetWeather(d)
		*d = session.Data{
			Authenticated: true,
			Owner:         owner,
			State:         session.CreatingFarm,
			ActiveCenter:  geo.DefaultCenter,
			SavedFarms:    saved,
			Mode:          session.ModeDrone,
		}
		log.Printf("[flow] %s signed in (%d saved farms)", owner, len(saved))
		return nil
	})
}

func (f *flowSvc) SignOut(s *session.Session) {
	_ = s.Update(func(d *session.Data) error {
		s.ResetWeather(d)
		*d = session.Data{State: session.SignedOut, Mode: session.ModeDrone}
		return nil
	})
}

func (f *flowSvc) CreateFarm(s *session.Session, name string, farmType entities.FarmType) error {
	farm := entities.Farm{Name: strings.TrimSpace(name), Type: farmType}
	if err := validateFarm(f.validate, farm); err != nil {
		return err
	}
	return s.Update(func(d *session.Data) error {
		if !d.Authenticated {
			return service.ErrNotSignedIn
		}
		boundary, center := entities.Boundary(nil), geo.DefaultCenter
		if saved, ok := d.SavedFarms.FindByName(farm.Name); ok {
			boundary = append(entities.Boundary(nil), saved.Boundary...)
			if saved.Center != nil {
				center = *saved.Center
			}
		}
		s.ResetWeather(d)
		d.CurrentFarm = &farm
		d.Committed = false
		d.ActiveBoundary = boundary
		d.ActiveCenter = center
		d.State = session.DrawingBoundary
		return nil
	})
}

func (f *flowSvc) SelectFarm(s *session.Session, name string) error {
	return s.Update(func(d *session.Data) error {
		if !d.Authenticated {
			return service.ErrNotSignedIn
		}
		saved, ok := f.farms.FindByName(d.SavedFarms, name)
		if !ok {
			return service.ErrUnknownFarm
		}
		s.ResetWeather(d)
		d.CurrentFarm = &saved
		d.Committed = false
		d.ActiveBoundary = append(entities.Boundary(nil), saved.Boundary...)
		if len(saved.Boundary) == 0 {
			d.ActiveBoundary = nil
		}
		d.ActiveCenter = geo.DefaultCenter
		if saved.Center != nil {
			d.ActiveCenter = *saved.Center
		}
		d.State = session.DrawingBoundary
		return nil
	})
}

// staging runs fn only while a farm is staged on the boundary page.
func staging(s *session.Session, fn func(d *session.Data)) error {
	return s.Update(func(d *session.Data) error {
		if !d.Authenticated {
			return service.ErrNotSignedIn
		}
		if d.CurrentFarm == nil {
			return service.ErrNoFarm
		}
		if d.State != session.DrawingBoundary {
			return service.ErrNotDrawing
		}
		fn(d)
		return nil
	})
}

func (f *flowSvc) StageBoundary(s *session.Session, b entities.Boundary) error {
	return staging(s, func(d *session.Data) {
		if len(b) == 0 {
			d.ActiveBoundary = nil
			return
		}
		d.ActiveBoundary = append(entities.Boundary(nil), b...)
	})
}

func (f *flowSvc) ClearBoundary(s *session.Session) error {
	return staging(s, func(d *session.Data) { d.ActiveBoundary = nil })
}

func (f *flowSvc) SetCenter(s *session.Session, p entities.Point) error {
	return staging(s, func(d *session.Data) { d.ActiveCenter = p })
}

func (f *flowSvc) Commit(s *session.Session) error {
	return s.Update(func(d *session.Data) error {
		if !d.Authenticated {
			return service.ErrNotSignedIn
		}
		if d.CurrentFarm == nil {
			return service.ErrNoFarm
		}
		if d.State != session.DrawingBoundary {
			return service.ErrNotDrawing
		}
		if len(d.ActiveBoundary) < service.MinBoundaryPoints {
			return service.ErrBoundaryTooSmall
		}
		farm := *d.CurrentFarm
		farm.Boundary = append(entities.Boundary(nil), d.ActiveBoundary...)
		center := d.ActiveCenter
		farm.Center = &center

		if names := geo.NewOverlapIndex(d.SavedFarms).Overlapping(farm.Boundary, farm.Name); len(names) > 0 {
			log.Printf("[flow] %q overlaps saved farms %v", farm.Name, names)
		}
		f.farms.Upsert(d.Owner, &d.SavedFarms, farm)

		s.ResetWeather(d)
		d.CurrentFarm = &farm
		d.Committed = true
		d.State = session.Dashboard
		return nil
	})
}

func (f *flowSvc) Enter(s *session.Session, target session.State) (string, bool) {
	redirect := ""
	_ = s.Update(func(d *session.Data) error {
		if !d.Authenticated {
			redirect = session.SignedOut.Route()
			return nil
		}
		switch target {
		case session.DrawingBoundary:
			if d.CurrentFarm == nil {
				redirect = session.CreatingFarm.Route()
				return nil
			}
		case session.Dashboard:
			if d.CurrentFarm == nil || !d.Committed {
				redirect = d.State.Route()
				if d.State == session.Dashboard || d.State == session.SignedOut {
					redirect = session.CreatingFarm.Route()
				}
				return nil
			}
		}
		d.State = target
		return nil
	})
	return redirect, redirect == ""
}

func (f *flowSvc) SetMode(s *session.Session, m session.Mode) {
	_ = s.Update(func(d *session.Data) error {
		d.Mode = m
		return nil
	})
}

func (f *flowSvc) BeginSearch(s *session.Session) error {
	return s.Update(func(d *session.Data) error {
		if d.Searching {
			return service.ErrSearchInFlight
		}
		d.Searching = true
		return nil
	})
}

func (f *flowSvc) EndSearch(s *session.Session) {
	_ = s.Update(func(d *session.Data) error {
		d.Searching = false
		return nil
	})
}
