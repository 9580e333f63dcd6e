package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"
)

// Wire structures matching the inspection tool's JSON export. Only the parts
// the report needs are decoded; unknown keys are ignored.
type wireEnvelope struct {
	Inspection wireInspection `json:"inspection"`
	Account    wireAccount    `json:"account"`
}

type wireAccount struct {
	CompanyName    string `json:"companyName"`
	CompanyLicense string `json:"companyLicense"`
}

type wireInspection struct {
	ID         string        `json:"id"`
	Schedule   wireSchedule  `json:"schedule"`
	ClientInfo wireClient    `json:"clientInfo"`
	Address    wireAddress   `json:"address"`
	Inspector  wireInspector `json:"inspector"`
	Sections   []wireSection `json:"sections"`
}

type wireSchedule struct {
	Date int64 `json:"date"` // unix milliseconds
}

type wireClient struct {
	Name string `json:"name"`
}

type wireAddress struct {
	Street      string `json:"street"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zipcode     string `json:"zipcode"`
	FullAddress string `json:"fullAddress"`
}

type wireInspector struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type wireSection struct {
	Name      string     `json:"name"`
	Order     int        `json:"order"`
	LineItems []wireItem `json:"lineItems"`
}

type wireItem struct {
	Name             string        `json:"name"`
	Title            string        `json:"title"`
	Order            int           `json:"order"`
	InspectionStatus string        `json:"inspectionStatus"`
	IsDeficient      bool          `json:"isDeficient"`
	Comments         []wireComment `json:"comments"`
}

type wireComment struct {
	Text        string     `json:"text"`
	CommentText string     `json:"commentText"`
	Content     string     `json:"content"`
	Order       int        `json:"order"`
	Photos      []wireShot `json:"photos"`
	Videos      []wireShot `json:"videos"`
}

type wireShot struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// Parse decodes an inspection JSON export into a Report and validates it.
func Parse(r io.Reader) (*Report, error) {
	var env wireEnvelope
	dec := json.NewDecoder(r)
	if err := dec.Decode(&env); err != nil {
		return nil, fmt.Errorf("report: decoding inspection JSON: %w", err)
	}

	rep := &Report{
		ID: env.Inspection.ID,
		Header: Header{
			ClientName:       env.Inspection.ClientInfo.Name,
			InspectionDate:   formatDate(env.Inspection.Schedule.Date),
			PropertyAddress:  fullAddress(env.Inspection.Address),
			InspectorName:    env.Inspection.Inspector.Name,
			InspectorLicense: env.Inspection.Inspector.ID,
			SponsorName:      env.Account.CompanyName,
			SponsorLicense:   env.Account.CompanyLicense,
		},
	}

	sections := append([]wireSection(nil), env.Inspection.Sections...)
	sort.SliceStable(sections, func(i, j int) bool { return sections[i].Order < sections[j].Order })

	for _, ws := range sections {
		sec := Section{Name: ws.Name}
		items := append([]wireItem(nil), ws.LineItems...)
		sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })

		for _, wi := range items {
			sec.Items = append(sec.Items, parseItem(wi, ws.Name))
		}
		rep.Sections = append(rep.Sections, sec)
	}

	if err := rep.Validate(); err != nil {
		return nil, err
	}
	return rep, nil
}

// ParseFile decodes and validates an inspection JSON file.
func ParseFile(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("report: opening %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

func parseItem(wi wireItem, sectionName string) Item {
	item := Item{
		Title:   itemTitle(wi),
		Section: sectionName,
	}

	comments := append([]wireComment(nil), wi.Comments...)
	sort.SliceStable(comments, func(i, j int) bool { return comments[i].Order < comments[j].Order })

	for _, wc := range comments {
		if text := strings.TrimSpace(commentText(wc)); text != "" {
			item.Comments = append(item.Comments, text)
		}
		for _, p := range wc.Photos {
			if p.URL != "" {
				item.Photos = append(item.Photos, MediaRef{URL: p.URL, Caption: p.Caption})
			}
		}
		for _, v := range wc.Videos {
			if v.URL != "" {
				item.Videos = append(item.Videos, MediaRef{URL: v.URL, Caption: v.Caption})
			}
		}
	}

	item.Status = deriveStatus(wi, item)
	return item
}

func itemTitle(wi wireItem) string {
	if wi.Title != "" {
		return wi.Title
	}
	return wi.Name
}

func commentText(wc wireComment) string {
	if wc.Text != "" {
		return wc.Text
	}
	if wc.CommentText != "" {
		return wc.CommentText
	}
	return wc.Content
}

// deriveStatus maps the tool's loose status vocabulary onto the form's four
// checkbox columns. An explicit deficiency flag wins, as does documentary
// evidence of a problem (comment plus photo). Items carrying no status and no
// evidence stay unmarked.
func deriveStatus(wi wireItem, item Item) Status {
	if wi.IsDeficient || (len(item.Comments) > 0 && len(item.Photos) > 0) {
		return StatusDeficient
	}
	switch strings.ToLower(strings.TrimSpace(wi.InspectionStatus)) {
	case "inspected":
		return StatusInspected
	case "not_present":
		return StatusNotPresent
	case "not_inspected":
		return StatusNotInspected
	case "deficient":
		return StatusDeficient
	case "":
		if len(item.Comments) == 0 && len(item.Photos) == 0 && len(item.Videos) == 0 {
			return StatusNone
		}
		return StatusNotInspected
	}
	return StatusInspected
}

func formatDate(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format("01/02/2006 3:04PM")
}

func fullAddress(a wireAddress) string {
	if a.FullAddress != "" {
		return a.FullAddress
	}
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Street, a.City, a.State, a.Zipcode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
