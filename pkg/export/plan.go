// Package export writes a committed farm's generated plan as an XLSX
// workbook: the farm itself, the drone strips and the robot waypoints.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"vitisense/entities"
	"vitisense/pkg/geo"
)

const (
	SheetFarm   = "Farm"
	SheetStrips = "Drone Strips"
	SheetRobot  = "Robot Path"
)

// Plan is everything the workbook is built from.
type Plan struct {
	Farm     entities.Farm
	Centroid entities.Point
	Strips   []geo.Segment
	Robot    []entities.Point
}

// NewPlan derives the plan for f with the default strip and column counts.
func NewPlan(f entities.Farm) Plan {
	centroid := geo.Centroid(f.Boundary)
	if len(f.Boundary) == 0 && f.Center != nil {
		centroid = *f.Center
	}
	return Plan{
		Farm:     f,
		Centroid: centroid,
		Strips:   geo.GridLines(f.Boundary, geo.DefaultStrips),
		Robot:    geo.ZigZag(f.Boundary, geo.DefaultColumns),
	}
}

// WriteXLSX renders p to w.
func WriteXLSX(w io.Writer, p Plan) error {
	x := excelize.NewFile()
	defer x.Close()

	x.SetSheetName("Sheet1", SheetFarm)
	if _, err := x.NewSheet(SheetStrips); err != nil {
		return err
	}
	if _, err := x.NewSheet(SheetRobot); err != nil {
		return err
	}
	header, err := x.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	farmRows := [][]interface{}{
		{"Name", p.Farm.Name},
		{"Type", string(p.Farm.Type)},
		{"Centroid Lat", p.Centroid.Lat()},
		{"Centroid Lng", p.Centroid.Lng()},
		{},
		{"Vertex", "Lat", "Lng"},
	}
	for i, v := range p.Farm.Boundary {
		farmRows = append(farmRows, []interface{}{i + 1, v.Lat(), v.Lng()})
	}
	if err := writeRows(x, SheetFarm, farmRows); err != nil {
		return err
	}
	_ = x.SetCellStyle(SheetFarm, "A1", "A4", header)
	_ = x.SetCellStyle(SheetFarm, "A6", "C6", header)

	stripRows := [][]interface{}{{"Strip", "Start Lat", "Start Lng", "End Lat", "End Lng"}}
	for i, s := range p.Strips {
		stripRows = append(stripRows, []interface{}{i + 1, s[0].Lat(), s[0].Lng(), s[1].Lat(), s[1].Lng()})
	}
	if err := writeRows(x, SheetStrips, stripRows); err != nil {
		return err
	}
	_ = x.SetCellStyle(SheetStrips, "A1", "E1", header)

	robotRows := [][]interface{}{{"Waypoint", "Lat", "Lng"}}
	for i, pt := range p.Robot {
		robotRows = append(robotRows, []interface{}{i + 1, pt.Lat(), pt.Lng()})
	}
	if err := writeRows(x, SheetRobot, robotRows); err != nil {
		return err
	}
	_ = x.SetCellStyle(SheetRobot, "A1", "C1", header)

	return x.Write(w)
}

func writeRows(x *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		r := row
		if err := x.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
