package flatfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/starmatchhq/starmatch/internal/domain"
)

// userCodec maps User records to lines of
// id,name,birthDate,birthTime,birthPlace,email,password,friendEmails.
type userCodec struct{}

func (userCodec) Encode(u *domain.User) []string {
	return []string{
		strconv.Itoa(u.ID),
		escapeField(u.Name),
		u.BirthDate.Format(dateLayout),
		u.BirthTime.String(),
		escapeField(u.BirthPlace),
		u.Email,
		u.Password,
		encodeStringList(u.FriendEmails),
	}
}

func (userCodec) Decode(fields []string) (*domain.User, error) {
	if len(fields) != 8 {
		return nil, fieldCountError("user", 8, len(fields))
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", fields[0], err)
	}
	birthDate, err := parseDate(fields[2])
	if err != nil {
		return nil, fmt.Errorf("invalid birth date %q: %w", fields[2], err)
	}
	birthTime, err := domain.ParseTimeOfDay(fields[3])
	if err != nil {
		return nil, err
	}
	return &domain.User{
		ID:           id,
		Name:         unescapeField(fields[1]),
		BirthDate:    birthDate,
		BirthTime:    birthTime,
		BirthPlace:   unescapeField(fields[4]),
		Email:        fields[5],
		Password:     fields[6],
		FriendEmails: decodeStringList(fields[7]),
	}, nil
}

// adminCodec maps Admin records to lines of id,name,email,password.
type adminCodec struct{}

func (adminCodec) Encode(a *domain.Admin) []string {
	return []string{strconv.Itoa(a.ID), escapeField(a.Name), a.Email, a.Password}
}

func (adminCodec) Decode(fields []string) (*domain.Admin, error) {
	if len(fields) != 4 {
		return nil, fieldCountError("admin", 4, len(fields))
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid admin id %q: %w", fields[0], err)
	}
	return &domain.Admin{ID: id, Name: unescapeField(fields[1]), Email: fields[2], Password: fields[3]}, nil
}

// traitCodec maps Trait records to lines of id,element,name.
type traitCodec struct{}

func (traitCodec) Encode(t *domain.Trait) []string {
	return []string{strconv.Itoa(t.ID), t.Element.String(), escapeField(t.Name)}
}

func (traitCodec) Decode(fields []string) (*domain.Trait, error) {
	if len(fields) != 3 {
		return nil, fieldCountError("trait", 3, len(fields))
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid trait id %q: %w", fields[0], err)
	}
	element, err := domain.ParseElement(fields[1])
	if err != nil {
		return nil, err
	}
	return &domain.Trait{ID: id, Element: element, Name: unescapeField(fields[2])}, nil
}

// quoteCodec maps Quote records to lines of id,element,text. The text is
// the final field, so commas inside it survive: Decode rejoins whatever
// the comma split scattered.
type quoteCodec struct{}

func (quoteCodec) Encode(q *domain.Quote) []string {
	return []string{strconv.Itoa(q.ID), q.Element.String(), q.Text}
}

func (quoteCodec) Decode(fields []string) (*domain.Quote, error) {
	if len(fields) < 3 {
		return nil, fieldCountError("quote", 3, len(fields))
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid quote id %q: %w", fields[0], err)
	}
	element, err := domain.ParseElement(fields[1])
	if err != nil {
		return nil, err
	}
	return &domain.Quote{ID: id, Element: element, Text: strings.Join(fields[2:], fieldSep)}, nil
}

// TraitResolver resolves trait ids to full traits when star-sign records
// are loaded. The flat-file star-sign repository is constructed with one
// backed by the trait repository, keeping trait association an Element
// grouping concern rather than duplicated data.
type TraitResolver func(ids []int) ([]*domain.Trait, error)

// starSignCodec maps StarSign records to lines of
// id,name,element,traitIDs. Traits are stored by id and rehydrated
// through the resolver on decode.
type starSignCodec struct {
	resolve TraitResolver
}

func (c starSignCodec) Encode(s *domain.StarSign) []string {
	ids := make([]int, len(s.Traits))
	for i, t := range s.Traits {
		ids[i] = t.ID
	}
	return []string{strconv.Itoa(s.ID), escapeField(s.Name), s.Element.String(), encodeIntList(ids)}
}

func (c starSignCodec) Decode(fields []string) (*domain.StarSign, error) {
	if len(fields) != 4 {
		return nil, fieldCountError("star sign", 4, len(fields))
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid star sign id %q: %w", fields[0], err)
	}
	element, err := domain.ParseElement(fields[2])
	if err != nil {
		return nil, err
	}
	traitIDs, err := decodeIntList(fields[3])
	if err != nil {
		return nil, err
	}
	traits, err := c.resolve(traitIDs)
	if err != nil {
		return nil, err
	}
	return &domain.StarSign{ID: id, Name: unescapeField(fields[1]), Element: element, Traits: traits}, nil
}
