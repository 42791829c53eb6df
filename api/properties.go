package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/homemanager/hmctl/model"
)

const (
	propertiesPath = "/api/properties/properties/"
	unitsPath      = "/api/properties/units/"
	imagesPath     = "/api/properties/property-images/"
)

// PropertiesAPI wraps the property and unit endpoints.
type PropertiesAPI struct {
	client *Client
}

func (p *PropertiesAPI) List(ctx context.Context) ([]model.Property, error) {
	var properties []model.Property
	if err := p.client.get(ctx, propertiesPath, nil, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

func (p *PropertiesAPI) Get(ctx context.Context, id int64) (*model.Property, error) {
	var property model.Property
	if err := p.client.get(ctx, idPath(propertiesPath, id), nil, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

func (p *PropertiesAPI) Create(ctx context.Context, body any) (*model.Property, error) {
	var property model.Property
	if err := p.client.post(ctx, propertiesPath, body, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

func (p *PropertiesAPI) Update(ctx context.Context, id int64, body any) (*model.Property, error) {
	var property model.Property
	if err := p.client.put(ctx, idPath(propertiesPath, id), body, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

func (p *PropertiesAPI) Delete(ctx context.Context, id int64) error {
	return p.client.delete(ctx, idPath(propertiesPath, id))
}

// Units lists every unit the caller can see.
func (p *PropertiesAPI) Units(ctx context.Context) ([]model.Unit, error) {
	var units []model.Unit
	if err := p.client.get(ctx, unitsPath, nil, &units); err != nil {
		return nil, err
	}
	return units, nil
}

// UnitsByProperty lists the units of one property.
func (p *PropertiesAPI) UnitsByProperty(ctx context.Context, propertyID int64) ([]model.Unit, error) {
	query := url.Values{"property": []string{strconv.FormatInt(propertyID, 10)}}
	var units []model.Unit
	if err := p.client.get(ctx, unitsPath, query, &units); err != nil {
		return nil, err
	}
	return units, nil
}

func (p *PropertiesAPI) CreateUnit(ctx context.Context, body any) (*model.Unit, error) {
	var unit model.Unit
	if err := p.client.post(ctx, unitsPath, body, &unit); err != nil {
		return nil, err
	}
	return &unit, nil
}

func (p *PropertiesAPI) UpdateUnit(ctx context.Context, id int64, body any) (*model.Unit, error) {
	var unit model.Unit
	if err := p.client.put(ctx, idPath(unitsPath, id), body, &unit); err != nil {
		return nil, err
	}
	return &unit, nil
}

func (p *PropertiesAPI) DeleteUnit(ctx context.Context, id int64) error {
	return p.client.delete(ctx, idPath(unitsPath, id))
}

// Images lists a property's uploaded photos.
func (p *PropertiesAPI) Images(ctx context.Context, propertyID int64) ([]model.PropertyImage, error) {
	query := url.Values{"property": []string{strconv.FormatInt(propertyID, 10)}}
	var images []model.PropertyImage
	if err := p.client.get(ctx, imagesPath, query, &images); err != nil {
		return nil, err
	}
	return images, nil
}
