package models

// Reservation is the canonical reservation record after normalization.
// Optional string fields use "" for "absent"; optional numeric fields are
// nil pointers so that zero stays distinguishable from missing.
type Reservation struct {
	ID        int64  `json:"id"`
	EventDate string `json:"event_date"` // ISO YYYY-MM-DD
	StartTime string `json:"start_time"` // HH:MM
	EndTime   string `json:"end_time"`   // HH:MM

	EventType  string `json:"event_type"`
	ClientName string `json:"client_name"`
	Salon      string `json:"salon,omitempty"`

	Guests       *int     `json:"guests,omitempty"`
	Installments *int     `json:"installments,omitempty"`
	EventPrice   *float64 `json:"event_price,omitempty"`
	MenuPrice    *float64 `json:"menu_price,omitempty"`
	DepositPct   *float64 `json:"deposit_percent,omitempty"`
	DepositAmt   *float64 `json:"deposit_amount,omitempty"`

	BrideName      string `json:"bride_name,omitempty"`
	GroomName      string `json:"groom_name,omitempty"`
	TCIdentity     string `json:"tc_identity,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Region         string `json:"region,omitempty"`
	Address        string `json:"address,omitempty"`
	ContractNo     string `json:"contract_no,omitempty"`
	ContractDate   string `json:"contract_date,omitempty"` // ISO, optional
	Status         string `json:"status,omitempty"`
	PaymentType    string `json:"payment_type,omitempty"`
	Tahsilatlar    string `json:"tahsilatlar,omitempty"`
	MenuName       string `json:"menu_name,omitempty"`
	MenuDetail     string `json:"menu_detail,omitempty"`
	SpecialRequest string `json:"special_request,omitempty"`
	Note           string `json:"note,omitempty"`

	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Clone returns an independent copy of the reservation.
func (r *Reservation) Clone() Reservation {
	c := *r
	c.Guests = cloneInt(r.Guests)
	c.Installments = cloneInt(r.Installments)
	c.EventPrice = cloneFloat(r.EventPrice)
	c.MenuPrice = cloneFloat(r.MenuPrice)
	c.DepositPct = cloneFloat(r.DepositPct)
	c.DepositAmt = cloneFloat(r.DepositAmt)
	return c
}

// CalendarEvent is the lightweight projection used for calendar badges.
type CalendarEvent struct {
	ID     int64  `json:"id"`
	Type   string `json:"type,omitempty"`
	Name   string `json:"name,omitempty"`
	Start  string `json:"start,omitempty"`
	End    string `json:"end,omitempty"`
	Guests *int   `json:"guests,omitempty"`
	Salon  string `json:"salon,omitempty"`
	Menu   string `json:"menu,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// Clone returns an independent copy of the calendar event.
func (e *CalendarEvent) Clone() CalendarEvent {
	c := *e
	c.Guests = cloneInt(e.Guests)
	return c
}

// CalendarEventOf projects a reservation into its calendar representation.
func CalendarEventOf(r *Reservation) CalendarEvent {
	return CalendarEvent{
		ID:     r.ID,
		Type:   r.EventType,
		Name:   r.ClientName,
		Start:  r.StartTime,
		End:    r.EndTime,
		Guests: cloneInt(r.Guests),
		Salon:  r.Salon,
		Menu:   r.MenuName,
		Notes:  r.SpecialRequest,
	}
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
