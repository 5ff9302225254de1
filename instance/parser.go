package instance

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/pdptw-alns/problem"
)

// Parse reads the eight-section instance format from r and builds a
// problem.Problem from it.
func Parse(r io.Reader) (*problem.Problem, error) {
	lines, err := readDataLines(r)
	if err != nil {
		return nil, err
	}
	cur := &cursor{lines: lines}

	numNodes, err := cur.nextInt()
	if err != nil {
		return nil, err
	}
	numVehicles, err := cur.nextInt()
	if err != nil {
		return nil, err
	}

	homeNode := make([]int, numVehicles)
	startTime := make([]int, numVehicles)
	capacity := make([]int, numVehicles)
	for i := 0; i < numVehicles; i++ {
		fields, err := cur.nextRow()
		if err != nil {
			return nil, err
		}
		if len(fields) != 4 {
			return nil, ErrMalformedRow
		}
		v := fields[0] - 1
		homeNode[v] = fields[1] - 1
		startTime[v] = fields[2]
		capacity[v] = fields[3]
	}

	numCalls, err := cur.nextInt()
	if err != nil {
		return nil, err
	}

	possibleCalls := make([][]int, numVehicles)
	for i := 0; i < numVehicles; i++ {
		fields, err := cur.nextRow()
		if err != nil {
			return nil, err
		}
		if len(fields) == 0 {
			continue
		}
		v := fields[0] - 1
		for _, c := range fields[1:] {
			possibleCalls[v] = append(possibleCalls[v], c-1)
		}
	}

	origin := make([]int, numCalls)
	destination := make([]int, numCalls)
	size := make([]int, numCalls)
	penalty := make([]int, numCalls)
	pickupLo := make([]int, numCalls)
	pickupHi := make([]int, numCalls)
	deliveryLo := make([]int, numCalls)
	deliveryHi := make([]int, numCalls)
	for i := 0; i < numCalls; i++ {
		fields, err := cur.nextRow()
		if err != nil {
			return nil, err
		}
		if len(fields) != 9 {
			return nil, ErrMalformedRow
		}
		c := fields[0] - 1
		origin[c] = fields[1] - 1
		destination[c] = fields[2] - 1
		size[c] = fields[3]
		penalty[c] = fields[4]
		pickupLo[c] = fields[5]
		pickupHi[c] = fields[6]
		deliveryLo[c] = fields[7]
		deliveryHi[c] = fields[8]
	}

	travelTime := make([][][]int, numVehicles)
	travelCost := make([][][]int, numVehicles)
	for v := range travelTime {
		travelTime[v] = zeroMatrix(numNodes)
		travelCost[v] = zeroMatrix(numNodes)
	}
	for {
		fields, ok, err := cur.peekRow()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if len(fields) != 5 {
			return nil, ErrMalformedRow
		}
		cur.advance()
		v := fields[0] - 1
		from := fields[1] - 1
		to := fields[2] - 1
		travelTime[v][from][to] = fields[3]
		travelCost[v][from][to] = fields[4]
	}

	loadTime := make([][]int, numVehicles)
	loadCost := make([][]int, numVehicles)
	unloadTime := make([][]int, numVehicles)
	unloadCost := make([][]int, numVehicles)
	for v := range loadTime {
		loadTime[v] = make([]int, numCalls)
		loadCost[v] = make([]int, numCalls)
		unloadTime[v] = make([]int, numCalls)
		unloadCost[v] = make([]int, numCalls)
	}
	for {
		fields, ok, err := cur.peekRow()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if len(fields) != 6 {
			return nil, ErrMalformedRow
		}
		cur.advance()
		v := fields[0] - 1
		c := fields[1] - 1
		loadTime[v][c] = fields[2]
		loadCost[v][c] = fields[3]
		unloadTime[v][c] = fields[4]
		unloadCost[v][c] = fields[5]
	}

	vehicles := make([]problem.VehicleSpec, numVehicles)
	for v := range vehicles {
		vehicles[v] = problem.VehicleSpec{
			HomeNode:      homeNode[v],
			StartTime:     startTime[v],
			Capacity:      capacity[v],
			PossibleCalls: possibleCalls[v],
			TravelTime:    travelTime[v],
			TravelCost:    travelCost[v],
			LoadTime:      loadTime[v],
			LoadCost:      loadCost[v],
			UnloadTime:    unloadTime[v],
			UnloadCost:    unloadCost[v],
		}
	}

	calls := make([]problem.CallSpec, numCalls)
	for c := range calls {
		calls[c] = problem.CallSpec{
			OriginNode:      origin[c],
			DestinationNode: destination[c],
			Size:            size[c],
			Penalty:         penalty[c],
			PickupLo:        pickupLo[c],
			PickupHi:        pickupHi[c],
			DeliveryLo:      deliveryLo[c],
			DeliveryHi:      deliveryHi[c],
		}
	}

	return problem.New(numNodes, vehicles, calls)
}

func zeroMatrix(n int) [][]int {
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
	}
	return m
}

// cursor walks the file's data lines (comment lines already stripped by
// readDataLines), one row at a time.
type cursor struct {
	lines []string
	pos   int
}

func (c *cursor) nextRow() ([]int, error) {
	if c.pos >= len(c.lines) {
		return nil, ErrUnexpectedEOF
	}
	line := c.lines[c.pos]
	c.pos++
	return parseIntRow(line)
}

func (c *cursor) nextInt() (int, error) {
	row, err := c.nextRow()
	if err != nil {
		return 0, err
	}
	if len(row) != 1 {
		return 0, ErrMalformedRow
	}
	return row[0], nil
}

// peekRow reports the next row without consuming it, and ok=false once the
// lines are exhausted (used by the unbounded trailing sections).
func (c *cursor) peekRow() ([]int, bool, error) {
	if c.pos >= len(c.lines) {
		return nil, false, nil
	}
	row, err := parseIntRow(c.lines[c.pos])
	if err != nil {
		return nil, false, err
	}
	return row, true, nil
}

func (c *cursor) advance() { c.pos++ }

func parseIntRow(line string) ([]int, error) {
	parts := strings.Split(line, ",")
	row := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, ErrMalformedRow
		}
		row = append(row, n)
	}
	return row, nil
}

// readDataLines scans r and drops comment lines (first rune neither a digit
// nor '-') and blank lines, preserving the order of every remaining row.
func readDataLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || isCommentLine(line) {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func isCommentLine(line string) bool {
	r := rune(line[0])
	return !(r == '-' || (r >= '0' && r <= '9'))
}
