package engine

import (
	"math"
	"sort"
	"strings"
	"time"
)

const MaxDetailAmount = 999_999_999_999

type Resource struct {
	Name          string `json:"name" yaml:"name"`
	Icon          string `json:"icon" yaml:"icon"`
	Color         string `json:"color" yaml:"color"`
	TextColor     string `json:"text_color" yaml:"text_color"`
	Description   string `json:"description" yaml:"description"`
	Level         int    `json:"level" yaml:"level"`
	Progress      int    `json:"progress" yaml:"progress"`
	NextMilestone string `json:"next_milestone" yaml:"next_milestone"`
	RelatedQuests int    `json:"related_quests" yaml:"related_quests"`
}

func NewResource(name, icon, color, textColor, description string) Resource {
	return Resource{
		Name:        name,
		Icon:        icon,
		Color:       color,
		TextColor:   textColor,
		Description: description,
		Level:       1,
	}
}

// DefaultResources returns the four resources every session starts with.
func DefaultResources() []Resource {
	return []Resource{
		NewResource("Social", "👥", "from-blue-500 to-blue-600", "text-blue-400", "Relationships and connections"),
		NewResource("Finance", "💰", "from-green-500 to-green-600", "text-green-400", "Money, investments, assets"),
		NewResource("Creation", "💡", "from-purple-500 to-purple-600", "text-purple-400", "Creativity, skills, knowledge"),
		NewResource("Exploration", "🧭", "from-orange-500 to-orange-600", "text-orange-400", "Experiences, learning, conquests"),
	}
}

// UpdateFromFields overwrites the tracked counters present in f. Name, icon
// and colors belong to the seeded resource and are never replaced.
func (r *Resource) UpdateFromFields(f Fields) {
	if v, ok := f.Lookup("level"); ok {
		r.Level = max(1, ParseInt(v, r.Level))
	}
	if v, ok := f.Lookup("progress"); ok {
		r.Progress = Clamp(ParseInt(v, r.Progress), 0, 100)
	}
	if v, ok := f.Lookup("next_milestone"); ok {
		r.NextMilestone = v
	}
	if v, ok := f.Lookup("related_quests"); ok {
		r.RelatedQuests = max(0, ParseInt(v, r.RelatedQuests))
	}
}

type ResourceDetail struct {
	ID     int          `json:"id" yaml:"id"`
	Name   string       `json:"name" yaml:"name"`
	Amount float64      `json:"amount" yaml:"amount"`
	Type   DetailType   `json:"type" yaml:"type"`
	Notes  string       `json:"notes" yaml:"notes"`
	Date   string       `json:"date" yaml:"date"`
	Status DetailStatus `json:"status" yaml:"status"`
}

func NewResourceDetail(now time.Time) ResourceDetail {
	return ResourceDetail{
		Type:   DetailAsset,
		Date:   now.Format(DateLayout),
		Status: DetailActive,
	}
}

// ResourceDetailFromFields coerces f into a detail; a missing date becomes now.
func ResourceDetailFromFields(f Fields, now time.Time) ResourceDetail {
	d := NewResourceDetail(now)
	d.ID = intField(f, "id", 0)
	d.Name = stringField(f, "name", "")
	d.Amount = clampFloat(ParseFloat(stringField(f, "amount", ""), 0), 0, MaxDetailAmount)
	d.Type = OneOf(stringField(f, "type", ""), DetailTypes, DetailAsset)
	d.Notes = stringField(f, "notes", "")
	d.Date = textField(f, "date", d.Date)
	d.Status = OneOf(stringField(f, "status", ""), detailStatuses, DetailActive)
	return d
}

// Normalize applies the bounds and defaults of ResourceDetailFromFields to a
// detail built in code.
func (d ResourceDetail) Normalize(now time.Time) ResourceDetail {
	d.Name = strings.TrimSpace(d.Name)
	d.Amount = clampFloat(d.Amount, 0, MaxDetailAmount)
	if math.IsNaN(d.Amount) {
		d.Amount = 0
	}
	d.Type = OneOf(string(d.Type), DetailTypes, DetailAsset)
	d.Status = OneOf(string(d.Status), detailStatuses, DetailActive)
	if strings.TrimSpace(d.Date) == "" {
		d.Date = now.Format(DateLayout)
	}
	return d
}

func (d ResourceDetail) IsActive() bool { return d.Status == DetailActive }

// IsPositive reports whether the detail adds to its resource total.
func (d ResourceDetail) IsPositive() bool {
	switch d.Type {
	case DetailAsset, DetailIncome, DetailInvestment:
		return true
	default:
		return false
	}
}

// Contribution is the signed amount this detail adds to its resource total.
func (d ResourceDetail) Contribution() float64 {
	if d.IsPositive() {
		return d.Amount
	}
	return -d.Amount
}

type detailStyle struct {
	icon  string
	color string
	label string
}

var detailStyles = map[DetailType]detailStyle{
	DetailAsset:      {icon: "💰", color: "#22C55E", label: "Asset"},
	DetailLoan:       {icon: "📋", color: "#F97316", label: "Loan"},
	DetailInvestment: {icon: "📈", color: "#3B82F6", label: "Investment"},
	DetailIncome:     {icon: "💸", color: "#10B981", label: "Income"},
	DetailExpense:    {icon: "💳", color: "#EF4444", label: "Expense"},
}

func (d ResourceDetail) TypeIcon() string  { return detailStyleFor(d.Type).icon }
func (d ResourceDetail) TypeColor() string { return detailStyleFor(d.Type).color }
func (d ResourceDetail) TypeLabel() string { return detailStyleFor(d.Type).label }

func detailStyleFor(t DetailType) detailStyle {
	if s, ok := detailStyles[t]; ok {
		return s
	}
	return detailStyles[DetailAsset]
}

// DetailBook groups resource details by owning resource name.
type DetailBook map[string][]ResourceDetail

// Names returns the resource names in a stable order.
func (b DetailBook) Names() []string {
	names := make([]string, 0, len(b))
	for n := range b {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of details across all resources.
func (b DetailBook) Count() int {
	n := 0
	for _, ds := range b {
		n += len(ds)
	}
	return n
}

// Lookup finds the group for name, ignoring case and surrounding space.
func (b DetailBook) Lookup(name string) (string, []ResourceDetail, bool) {
	if ds, ok := b[name]; ok {
		return name, ds, true
	}
	want := strings.ToLower(strings.TrimSpace(name))
	for n, ds := range b {
		if strings.ToLower(strings.TrimSpace(n)) == want {
			return n, ds, true
		}
	}
	return "", nil, false
}
