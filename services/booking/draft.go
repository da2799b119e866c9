package booking

import (
	"strings"

	"swiftdrop/models"
)

// DraftStore owns exactly one BookingDraft for the lifetime of a wizard
// session. It performs no validation beyond field typing; completeness is
// checked at step gates and at submission. No I/O happens here.
type DraftStore struct {
	draft models.BookingDraft
}

// NewDraftStore returns a store holding the empty default draft.
func NewDraftStore() *DraftStore {
	return &DraftStore{draft: models.NewBookingDraft()}
}

// NewDraftStoreFrom wraps an existing draft, e.g. one rehydrated from the
// session cache.
func NewDraftStoreFrom(draft models.BookingDraft) *DraftStore {
	return &DraftStore{draft: draft}
}

// SelectServiceType switches the draft to the given service type. Common
// fields (pickup, dropoff, package) are retained; service-specific groups are
// cleared and the group matching the new type is initialised empty. The step
// index resets to 0.
func (s *DraftStore) SelectServiceType(id models.ServiceTypeID) error {
	def, err := Definition(id)
	if err != nil {
		return err
	}
	if !def.Available {
		return ErrServiceUnavailable
	}

	s.draft.ServiceType = id
	s.draft.CurrentStep = 0
	s.draft.ClearServiceFields()

	switch id {
	case models.ServiceLargeFreight:
		s.draft.Freight = &models.FreightDetails{}
	case models.ServiceRecurring:
		s.draft.Recurring = &models.RecurringSchedule{Frequency: "weekly"}
	case models.ServiceMultiStop:
		s.draft.MultiStop = &models.MultiStopDetails{Mode: "multi_dropoff"}
	case models.ServiceWhiteGlove:
		s.draft.WhiteGlove = &models.WhiteGloveOptions{}
	case models.ServiceSignature:
		s.draft.Signature = &models.SignatureDetails{}
	case models.ServiceDocumentDestruction:
		s.draft.Shredding = &models.ShreddingDetails{
			ContainerQuantities: map[string]int{},
			RequiresDelivery:    true,
			Certificate:         true,
		}
	case models.ServiceRubbishRemoval:
		s.draft.Rubbish = &models.RubbishDetails{RubbishType: "general"}
	case models.ServiceElectronicRecycling:
		s.draft.Ewaste = &models.EwasteDetails{}
	}
	return nil
}

// clearSelection backs the draft out of the wizard entirely, keeping common
// fields so nothing already typed is lost.
func (s *DraftStore) clearSelection() {
	s.draft.ServiceType = ""
	s.draft.CurrentStep = 0
	s.draft.ClearServiceFields()
}

// UpdateField merges one value into the draft at a dotted field path such as
// "pickupDetails.suburb" or "freight.vehicleType". Paths for a service group
// other than the selected one fail with ErrFieldNotApplicable; list-shaped
// groups have dedicated mutators instead.
func (s *DraftStore) UpdateField(path string, value any) error {
	head, rest, _ := strings.Cut(path, ".")

	switch head {
	case "serviceLevel":
		v, err := asString(value)
		if err != nil {
			return err
		}
		s.draft.ServiceLevel = models.ServiceLevel(v)
		return nil
	case "packageDescription":
		return setString(&s.draft.PackageDescription, value)
	case "packageWeightKg":
		return setFloat(&s.draft.PackageWeightKG, value)
	case "specialInstructions":
		return setString(&s.draft.SpecialInstructions, value)
	case "requiresSignature":
		return setBool(&s.draft.RequiresSignature, value)
	case "requiresPhoto":
		return setBool(&s.draft.RequiresPhoto, value)
	case "freightProtection":
		return setBool(&s.draft.FreightProtection, value)
	case "declaredValue":
		return setFloat(&s.draft.DeclaredValue, value)
	case "pickupDetails":
		return setLocationField(&s.draft.Pickup, rest, value)
	case "dropoffDetails":
		return setLocationField(&s.draft.Dropoff, rest, value)
	case "freight":
		if s.draft.Freight == nil {
			return ErrFieldNotApplicable
		}
		return s.setFreightField(rest, value)
	case "recurring":
		if s.draft.Recurring == nil {
			return ErrFieldNotApplicable
		}
		return s.setRecurringField(rest, value)
	case "multiStop":
		if s.draft.MultiStop == nil {
			return ErrFieldNotApplicable
		}
		if rest == "mode" {
			return setString(&s.draft.MultiStop.Mode, value)
		}
		return ErrUnknownField
	case "whiteGlove":
		if s.draft.WhiteGlove == nil {
			return ErrFieldNotApplicable
		}
		return s.setWhiteGloveField(rest, value)
	case "signature":
		if s.draft.Signature == nil {
			return ErrFieldNotApplicable
		}
		return s.setSignatureField(rest, value)
	case "shredding":
		if s.draft.Shredding == nil {
			return ErrFieldNotApplicable
		}
		return s.setShreddingField(rest, value)
	case "rubbish":
		if s.draft.Rubbish == nil {
			return ErrFieldNotApplicable
		}
		return s.setRubbishField(rest, value)
	case "ewaste":
		if s.draft.Ewaste == nil {
			return ErrFieldNotApplicable
		}
		return s.setEwasteField(rest, value)
	}
	return ErrUnknownField
}

func (s *DraftStore) setFreightField(path string, value any) error {
	f := s.draft.Freight
	switch path {
	case "lengthCm":
		return setFloat(&f.LengthCM, value)
	case "widthCm":
		return setFloat(&f.WidthCM, value)
	case "heightCm":
		return setFloat(&f.HeightCM, value)
	case "vehicleType":
		return setString(&f.VehicleType, value)
	case "requiresTailgate":
		return setBool(&f.RequiresTailgate, value)
	case "requiresForklift":
		return setBool(&f.RequiresForklift, value)
	}
	return ErrUnknownField
}

func (s *DraftStore) setRecurringField(path string, value any) error {
	r := s.draft.Recurring
	switch path {
	case "frequency":
		return setString(&r.Frequency, value)
	case "days":
		v, err := asStringSlice(value)
		if err != nil {
			return err
		}
		r.Days = v
		return nil
	case "startDate":
		return setString(&r.StartDate, value)
	case "endDate":
		return setString(&r.EndDate, value)
	case "time":
		return setString(&r.Time, value)
	}
	return ErrUnknownField
}

func (s *DraftStore) setWhiteGloveField(path string, value any) error {
	o := s.draft.WhiteGlove
	switch path {
	case "assembly":
		return setBool(&o.Assembly, value)
	case "disassembly":
		return setBool(&o.Disassembly, value)
	case "packaging":
		return setBool(&o.Packaging, value)
	case "unpacking":
		return setBool(&o.Unpacking, value)
	case "roomPlacement":
		return setBool(&o.RoomPlacement, value)
	case "debrisRemoval":
		return setBool(&o.DebrisRemoval, value)
	case "twoPersonLift":
		return setBool(&o.TwoPersonLift, value)
	case "waitAndReturn":
		return setBool(&o.WaitAndReturn, value)
	}
	return ErrUnknownField
}

func (s *DraftStore) setSignatureField(path string, value any) error {
	sig := s.draft.Signature
	head, rest, _ := strings.Cut(path, ".")
	switch head {
	case "documentType":
		return setString(&sig.DocumentType, value)
	case "requiresWitness":
		return setBool(&sig.RequiresWitness, value)
	case "returnDestination":
		return setLocationField(&sig.ReturnDestination, rest, value)
	}
	return ErrUnknownField
}

func (s *DraftStore) setShreddingField(path string, value any) error {
	sh := s.draft.Shredding
	switch path {
	case "requiresDelivery":
		return setBool(&sh.RequiresDelivery, value)
	case "pickupOnly":
		return setBool(&sh.PickupOnly, value)
	case "certificate":
		return setBool(&sh.Certificate, value)
	}
	return ErrUnknownField
}

func (s *DraftStore) setRubbishField(path string, value any) error {
	r := s.draft.Rubbish
	switch path {
	case "rubbishType":
		return setString(&r.RubbishType, value)
	case "estimatedVolumeM3":
		return setFloat(&r.EstimatedVolume, value)
	}
	return ErrUnknownField
}

func (s *DraftStore) setEwasteField(path string, value any) error {
	e := s.draft.Ewaste
	switch path {
	case "requiresDataDestruction":
		return setBool(&e.RequiresDataDestruction, value)
	case "requiresCertificate":
		return setBool(&e.RequiresCertificate, value)
	}
	return ErrUnknownField
}

func setLocationField(loc *models.LocationDetails, path string, value any) error {
	switch path {
	case "streetAddress":
		return setString(&loc.StreetAddress, value)
	case "suburb":
		return setString(&loc.Suburb, value)
	case "state":
		return setString(&loc.State, value)
	case "postcode":
		return setString(&loc.Postcode, value)
	case "contactName":
		return setString(&loc.ContactName, value)
	case "phone":
		return setString(&loc.Phone, value)
	case "email":
		return setString(&loc.Email, value)
	case "notes":
		return setString(&loc.Notes, value)
	}
	return ErrUnknownField
}

// AddStop appends an empty additional stop for a multi-stop draft.
func (s *DraftStore) AddStop() error {
	if s.draft.MultiStop == nil {
		return ErrFieldNotApplicable
	}
	s.draft.MultiStop.AdditionalStops = append(s.draft.MultiStop.AdditionalStops, models.LocationDetails{})
	return nil
}

// UpdateStop replaces the additional stop at index.
func (s *DraftStore) UpdateStop(index int, loc models.LocationDetails) error {
	if s.draft.MultiStop == nil {
		return ErrFieldNotApplicable
	}
	if index < 0 || index >= len(s.draft.MultiStop.AdditionalStops) {
		return ErrUnknownField
	}
	s.draft.MultiStop.AdditionalStops[index] = loc
	return nil
}

// RemoveStop deletes the additional stop at index.
func (s *DraftStore) RemoveStop(index int) error {
	if s.draft.MultiStop == nil {
		return ErrFieldNotApplicable
	}
	stops := s.draft.MultiStop.AdditionalStops
	if index < 0 || index >= len(stops) {
		return ErrUnknownField
	}
	s.draft.MultiStop.AdditionalStops = append(stops[:index], stops[index+1:]...)
	return nil
}

// SetContainerQuantity sets the ordered quantity for one shred container
// type. A zero quantity removes the line.
func (s *DraftStore) SetContainerQuantity(containerID string, qty int) error {
	if s.draft.Shredding == nil {
		return ErrFieldNotApplicable
	}
	if _, ok := ContainerTypes[containerID]; !ok {
		return ErrUnknownField
	}
	if qty <= 0 {
		delete(s.draft.Shredding.ContainerQuantities, containerID)
		return nil
	}
	s.draft.Shredding.ContainerQuantities[containerID] = qty
	return nil
}

// AddEwasteItem appends an item line to an electronic recycling draft.
func (s *DraftStore) AddEwasteItem(itemType string, qty int) error {
	if s.draft.Ewaste == nil {
		return ErrFieldNotApplicable
	}
	s.draft.Ewaste.Items = append(s.draft.Ewaste.Items, models.EwasteItem{Type: itemType, Quantity: qty})
	return nil
}

// RemoveEwasteItem deletes the item line at index.
func (s *DraftStore) RemoveEwasteItem(index int) error {
	if s.draft.Ewaste == nil {
		return ErrFieldNotApplicable
	}
	items := s.draft.Ewaste.Items
	if index < 0 || index >= len(items) {
		return ErrUnknownField
	}
	s.draft.Ewaste.Items = append(items[:index], items[index+1:]...)
	return nil
}

// AddRubbishPhoto records the URL of an uploaded rubbish photo.
func (s *DraftStore) AddRubbishPhoto(url string) error {
	if s.draft.Rubbish == nil {
		return ErrFieldNotApplicable
	}
	s.draft.Rubbish.PhotoURLs = append(s.draft.Rubbish.PhotoURLs, url)
	return nil
}

// Snapshot returns a deep copy of the draft. Callers can never reach the
// store's internal state through it.
func (s *DraftStore) Snapshot() models.BookingDraft {
	d := s.draft

	if s.draft.Freight != nil {
		f := *s.draft.Freight
		d.Freight = &f
	}
	if s.draft.Recurring != nil {
		r := *s.draft.Recurring
		r.Days = append([]string(nil), s.draft.Recurring.Days...)
		d.Recurring = &r
	}
	if s.draft.MultiStop != nil {
		m := *s.draft.MultiStop
		m.AdditionalStops = append([]models.LocationDetails(nil), s.draft.MultiStop.AdditionalStops...)
		d.MultiStop = &m
	}
	if s.draft.WhiteGlove != nil {
		o := *s.draft.WhiteGlove
		d.WhiteGlove = &o
	}
	if s.draft.Signature != nil {
		sig := *s.draft.Signature
		d.Signature = &sig
	}
	if s.draft.Shredding != nil {
		sh := *s.draft.Shredding
		sh.ContainerQuantities = make(map[string]int, len(s.draft.Shredding.ContainerQuantities))
		for k, v := range s.draft.Shredding.ContainerQuantities {
			sh.ContainerQuantities[k] = v
		}
		d.Shredding = &sh
	}
	if s.draft.Rubbish != nil {
		r := *s.draft.Rubbish
		r.PhotoURLs = append([]string(nil), s.draft.Rubbish.PhotoURLs...)
		d.Rubbish = &r
	}
	if s.draft.Ewaste != nil {
		e := *s.draft.Ewaste
		e.Items = append([]models.EwasteItem(nil), s.draft.Ewaste.Items...)
		d.Ewaste = &e
	}
	return d
}

// Reset clears the draft back to the empty defaults. Called after a
// successful submission or an explicit cancellation.
func (s *DraftStore) Reset() {
	s.draft = models.NewBookingDraft()
}

// Value coercion helpers. JSON payloads deliver numbers as float64 and
// integers are accepted for convenience in direct library use.

func asString(value any) (string, error) {
	v, ok := value.(string)
	if !ok {
		return "", ErrInvalidFieldValue
	}
	return v, nil
}

func asFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	}
	return 0, ErrInvalidFieldValue
}

func asBool(value any) (bool, error) {
	v, ok := value.(bool)
	if !ok {
		return false, ErrInvalidFieldValue
	}
	return v, nil
}

func asStringSlice(value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...), nil
	case []any:
		out := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, ErrInvalidFieldValue
			}
			out[i] = s
		}
		return out, nil
	}
	return nil, ErrInvalidFieldValue
}

func setString(dst *string, value any) error {
	v, err := asString(value)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func setFloat(dst *float64, value any) error {
	v, err := asFloat(value)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func setBool(dst *bool, value any) error {
	v, err := asBool(value)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
