package datastructure

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/davin-b-s/aeronavix/pkg/geo"
)

// ReadFlights loads a flight list from a csv file with one
// "from,to,distance" record per line. Blank lines and lines starting
// with '#' are skipped. Records are inserted in file order, so the file
// order decides the search tie-breaks exactly like manual insertion.
func ReadFlights(path string, graph *FlightGraph) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			return fmt.Errorf("%s:%d: expected from,to,distance, got %q", path, lineNum, line)
		}

		from := strings.TrimSpace(fields[0])
		to := strings.TrimSpace(fields[1])
		distance, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil {
			return fmt.Errorf("%s:%d: bad distance %q: %w", path, lineNum, fields[2], err)
		}

		if err := graph.Insert(from, to, distance); err != nil {
			return fmt.Errorf("%s:%d: %w", path, lineNum, err)
		}
	}
	return sc.Err()
}

// ReadLocationCoordinates loads a "name,lat,lon" csv of location
// coordinates, used for the spatial index and route geometry. The
// flight graph itself never needs coordinates.
func ReadLocationCoordinates(path string) (map[string]geo.Coordinate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	coords := make(map[string]geo.Coordinate)
	sc := bufio.NewScanner(f)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("%s:%d: expected name,lat,lon, got %q", path, lineNum, line)
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad lat %q: %w", path, lineNum, fields[1], err)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad lon %q: %w", path, lineNum, fields[2], err)
		}

		coords[strings.TrimSpace(fields[0])] = geo.NewCoordinate(lat, lon)
	}
	return coords, sc.Err()
}
