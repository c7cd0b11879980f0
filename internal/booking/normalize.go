package booking

import (
	"fmt"
	"strconv"
	"strings"

	"dugunsalon/internal/models"
)

// Normalize validates a raw reservation payload and produces the canonical
// record. It is a pure function: no storage or cache access, no mutation of
// the input map.
func Normalize(raw map[string]any) (*models.Reservation, error) {
	eventDate, err := EnsureISODate(cleanString(raw["event_date"]), "Rezervasyon tarihi", true)
	if err != nil {
		return nil, err
	}

	startTime, err := EnsureTime(cleanString(raw["start_time"]), "Başlangıç saati")
	if err != nil {
		return nil, err
	}
	endTime, err := EnsureTime(cleanString(raw["end_time"]), "Bitiş saati")
	if err != nil {
		return nil, err
	}
	if TimeToMinutes(endTime) <= TimeToMinutes(startTime) {
		return nil, validationf("Bitiş saati başlangıç saatinden sonra olmalıdır.")
	}

	eventType := cleanString(raw["event_type"])
	if eventType == "" {
		return nil, validationf("Etkinlik türü zorunludur.")
	}
	clientName := cleanString(raw["client_name"])
	if clientName == "" {
		return nil, validationf("Ad soyad alanı zorunludur.")
	}

	guests, err := toPositiveInt(raw["guests"], "Davetli sayısı", false)
	if err != nil {
		return nil, err
	}
	installments, err := toPositiveInt(raw["installments"], "Taksit sayısı", true)
	if err != nil {
		return nil, err
	}

	contractDate, err := EnsureISODate(cleanString(raw["contract_date"]), "Sözleşme tarihi", false)
	if err != nil {
		return nil, err
	}

	eventPrice, err := toFloat(raw["event_price"], "Kişi başı etkinlik ücreti")
	if err != nil {
		return nil, err
	}
	menuPrice, err := toFloat(raw["menu_price"], "Kişi başı menü ücreti")
	if err != nil {
		return nil, err
	}
	depositPct, err := toFloat(raw["deposit_percent"], "Kapora yüzdesi")
	if err != nil {
		return nil, err
	}
	depositAmt, err := toFloat(raw["deposit_amount"], "Kapora tutarı")
	if err != nil {
		return nil, err
	}

	if depositPct != nil && (*depositPct < 0 || *depositPct > 100) {
		return nil, validationf("Kapora yüzdesi 0 ile 100 arasında olmalıdır.")
	}

	return &models.Reservation{
		EventDate:      eventDate,
		StartTime:      startTime,
		EndTime:        endTime,
		EventType:      eventType,
		ClientName:     clientName,
		Salon:          cleanString(raw["salon"]),
		Guests:         guests,
		Installments:   installments,
		EventPrice:     eventPrice,
		MenuPrice:      menuPrice,
		DepositPct:     depositPct,
		DepositAmt:     depositAmt,
		BrideName:      cleanString(raw["bride_name"]),
		GroomName:      cleanString(raw["groom_name"]),
		TCIdentity:     cleanString(raw["tc_identity"]),
		Phone:          cleanString(raw["phone"]),
		Region:         cleanString(raw["region"]),
		Address:        cleanString(raw["address"]),
		ContractNo:     cleanString(raw["contract_no"]),
		ContractDate:   contractDate,
		Status:         cleanString(raw["status"]),
		PaymentType:    cleanString(raw["payment_type"]),
		Tahsilatlar:    cleanString(raw["tahsilatlar"]),
		MenuName:       cleanString(raw["menu_name"]),
		MenuDetail:     cleanString(raw["menu_detail"]),
		SpecialRequest: cleanString(raw["special_request"]),
		Note:           cleanString(raw["note"]),
	}, nil
}

// cleanString renders any payload value as a trimmed string; nil and
// whitespace-only values become "".
func cleanString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		// JSON numbers arrive as float64; keep integral values exact.
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func toPositiveInt(value any, label string, allowZero bool) (*int, error) {
	text := cleanString(value)
	if text == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return nil, validationf("%s sayısal olmalıdır.", label)
	}
	if n < 0 || (!allowZero && n == 0) {
		return nil, validationf("%s pozitif olmalıdır.", label)
	}
	return &n, nil
}

func toFloat(value any, label string) (*float64, error) {
	text := cleanString(value)
	if text == "" {
		return nil, nil
	}
	text = strings.ReplaceAll(text, ",", ".")
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, validationf("%s sayısal olmalıdır.", label)
	}
	return &f, nil
}
