package file

import (
	"context"
	"sort"
	"time"

	"github.com/dtroode/chessacademy-server/internal/logger"
	"github.com/dtroode/chessacademy-server/internal/model"
)

// FieldCipher encrypts lead PII before it is written.
type FieldCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(encoded string) (string, error)
}

var _ model.LeadStore = (*LeadRepository)(nil)

type leadsDocument struct {
	Leads []leadRecord `json:"leads"`
}

// leadRecord is the on-disk lead. Phone and email are stored encrypted;
// plain phone/email are still read from records written before encryption.
type leadRecord struct {
	ID             docID      `json:"id"`
	Name           string     `json:"name"`
	PhoneEncrypted string     `json:"phone_encrypted,omitempty"`
	EmailEncrypted *string    `json:"email_encrypted"`
	Phone          string     `json:"phone,omitempty"`
	Email          string     `json:"email,omitempty"`
	Type           *string    `json:"type"`
	Level          *string    `json:"level"`
	Message        *string    `json:"message"`
	Location       string     `json:"location,omitempty"`
	DemoDate       string     `json:"demoDate,omitempty"`
	DemoTime       string     `json:"demoTime,omitempty"`
	Timestamp      time.Time  `json:"timestamp"`
	Status         string     `json:"status"`
	UpdatedAt      *time.Time `json:"updatedAt"`
	UpdatedBy      *string    `json:"updatedBy"`
}

// LeadRepository keeps leads in leads.json with encrypted phone and email.
// Leads are hard-deletable here.
type LeadRepository struct {
	doc    *document[leadsDocument]
	cipher FieldCipher
	logger *logger.Logger
}

func NewLeadRepository(storage model.Storage, cipher FieldCipher, logger *logger.Logger) *LeadRepository {
	return &LeadRepository{
		doc:    newDocument[leadsDocument](storage, leadsKey),
		cipher: cipher,
		logger: logger,
	}
}

func (r *LeadRepository) Create(ctx context.Context, lead model.Lead) (model.Lead, error) {
	rec, err := r.encode(lead)
	if err != nil {
		return model.Lead{}, err
	}

	err = r.doc.update(ctx, func(doc *leadsDocument) error {
		doc.Leads = append(doc.Leads, rec)
		return nil
	})
	if err != nil {
		return model.Lead{}, err
	}
	return lead, nil
}

func (r *LeadRepository) List(ctx context.Context) ([]model.Lead, error) {
	doc, err := r.doc.read(ctx)
	if err != nil {
		return nil, err
	}

	leads := make([]model.Lead, 0, len(doc.Leads))
	for _, rec := range doc.Leads {
		leads = append(leads, r.decode(rec))
	}

	// Document order is insertion order; newest first, later insert wins ties.
	for i, j := 0, len(leads)-1; i < j; i, j = i+1, j-1 {
		leads[i], leads[j] = leads[j], leads[i]
	}
	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].CreatedAt.After(leads[j].CreatedAt)
	})
	return leads, nil
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id string, status model.LeadStatus, actor string, at time.Time) (model.Lead, error) {
	var updated leadRecord
	err := r.doc.update(ctx, func(doc *leadsDocument) error {
		for i := range doc.Leads {
			if string(doc.Leads[i].ID) != id {
				continue
			}
			at := at.UTC()
			doc.Leads[i].Status = string(status)
			doc.Leads[i].UpdatedAt = &at
			doc.Leads[i].UpdatedBy = &actor
			updated = doc.Leads[i]
			return nil
		}
		return model.ErrNotFound
	})
	if err != nil {
		return model.Lead{}, err
	}
	return r.decode(updated), nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	return r.doc.update(ctx, func(doc *leadsDocument) error {
		for i := range doc.Leads {
			if string(doc.Leads[i].ID) == id {
				doc.Leads = append(doc.Leads[:i], doc.Leads[i+1:]...)
				return nil
			}
		}
		return model.ErrNotFound
	})
}

func (r *LeadRepository) encode(lead model.Lead) (leadRecord, error) {
	phone, err := r.cipher.Encrypt(lead.Phone)
	if err != nil {
		return leadRecord{}, err
	}

	rec := leadRecord{
		ID:             docID(lead.ID),
		Name:           lead.Name,
		PhoneEncrypted: phone,
		Type:           optional(string(lead.Type)),
		Level:          optional(string(lead.Level)),
		Message:        optional(lead.Message),
		Location:       lead.Location,
		DemoDate:       lead.DemoDate,
		DemoTime:       lead.DemoTime,
		Timestamp:      lead.CreatedAt.UTC(),
		Status:         string(lead.Status),
		UpdatedAt:      lead.UpdatedAt,
		UpdatedBy:      optional(lead.UpdatedBy),
	}

	if lead.Email != "" {
		email, err := r.cipher.Encrypt(lead.Email)
		if err != nil {
			return leadRecord{}, err
		}
		rec.EmailEncrypted = &email
	}

	return rec, nil
}

// decode never fails: a field that cannot be decrypted is logged and
// returned as stored.
func (r *LeadRepository) decode(rec leadRecord) model.Lead {
	lead := model.Lead{
		ID:        string(rec.ID),
		Name:      rec.Name,
		Phone:     rec.Phone,
		Email:     rec.Email,
		Type:      model.LeadType(deref(rec.Type)),
		Level:     model.LeadLevel(deref(rec.Level)),
		Message:   deref(rec.Message),
		Location:  rec.Location,
		DemoDate:  rec.DemoDate,
		DemoTime:  rec.DemoTime,
		Status:    model.LeadStatus(rec.Status),
		CreatedAt: rec.Timestamp,
		UpdatedAt: rec.UpdatedAt,
		UpdatedBy: deref(rec.UpdatedBy),
	}

	if rec.PhoneEncrypted != "" {
		lead.Phone = r.decrypt(lead.ID, "phone", rec.PhoneEncrypted)
	}
	if rec.EmailEncrypted != nil && *rec.EmailEncrypted != "" {
		lead.Email = r.decrypt(lead.ID, "email", *rec.EmailEncrypted)
	}

	return lead
}

func (r *LeadRepository) decrypt(id, field, encoded string) string {
	plain, err := r.cipher.Decrypt(encoded)
	if err != nil {
		r.logger.Error("Lead repository: failed to decrypt lead field",
			"id", id,
			"field", field,
			"error", err.Error())
		return encoded
	}
	return plain
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
