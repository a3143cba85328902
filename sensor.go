package alpenpass

// SensorKind identifies which value of a pass a sensor reports.
type SensorKind string

// Sensor kinds, three per selected pass.
const (
	SensorStatus      SensorKind = "status"
	SensorTemperature SensorKind = "temperature"
	SensorLastUpdate  SensorKind = "last_update"
)

// Sensor is one exposed value of a selected pass. When Available is false
// Value is nil and consumers should show the value as unavailable rather
// than clearing what they displayed before.
type Sensor struct {
	UniqueID   string            `json:"uniqueId"`
	Name       string            `json:"name"`
	Kind       SensorKind        `json:"kind"`
	PassKey    string            `json:"passKey"`
	Icon       string            `json:"icon"`
	Unit       string            `json:"unit,omitempty"`
	Value      any               `json:"value"`
	Available  bool              `json:"available"`
	Attributes map[string]string `json:"attributes"`
}

// PassSensors builds the status, temperature and last-update sensors of a
// catalog pass. pass may be nil when the last update had no data for it.
// The sensors are available only if the last update succeeded and pass is set.
func PassSensors(entry CatalogEntry, pass *Pass, lastUpdateSuccess bool) []Sensor {
	available := lastUpdateSuccess && pass != nil

	var status, temperature, lastUpdate any
	if available {
		status = pass.Status
		if pass.Temperature != nil {
			temperature = *pass.Temperature
		}
		if pass.LastUpdate != "" {
			lastUpdate = pass.LastUpdate
		}
	}

	newSensor := func(kind SensorKind, label, icon string, value any) Sensor {
		return Sensor{
			UniqueID:  entry.Key + "_" + string(kind),
			Name:      entry.Name + " " + label,
			Kind:      kind,
			PassKey:   entry.Key,
			Icon:      icon,
			Value:     value,
			Available: available,
			Attributes: map[string]string{
				"route":    entry.Route,
				"pass_key": entry.Key,
			},
		}
	}

	temp := newSensor(SensorTemperature, "Temperature", "mdi:thermometer", temperature)
	temp.Unit = "°C"

	return []Sensor{
		newSensor(SensorStatus, "Status", "mdi:road", status),
		temp,
		newSensor(SensorLastUpdate, "Last Update", "mdi:clock-check-outline", lastUpdate),
	}
}

// SensorService exposes the sensors of the selected passes.
type SensorService interface {
	Sensors() []Sensor
}
