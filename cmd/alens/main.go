/*
 * main.go, part of aLENS-analysis.
 *
 * Copyright 2024 The aLENS-analysis authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Command alens runs the chromatin analyses on aLENS simulation data.
// Every analysis command takes the raw HDF5 data file as its argument and
// stores its results in the analysis group of that file.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/guptarohit/asciigraph"
	alens "github.com/sidneyholden1/aLENS-analysis"
	"github.com/sidneyholden1/aLENS-analysis/contact"
	"github.com/sidneyholden1/aLENS-analysis/h5"
	"github.com/sidneyholden1/aLENS-analysis/localorder"
	"github.com/spf13/cobra"
)

var (
	backendName string
	workers     int
	plotFile    string
	preview     bool
	ssInd       int

	// contact
	sigma     float64
	blockStep int
	logAvg    bool
	useRadii  bool

	// condensates and kymographs
	threshold float64
	beadWin   int
	timeWin   int
	bins      int
	usePos    bool
	tsStart   int
	tsEnd     int

	// correlations
	kind string
	fast bool

	// connect
	force bool

	// localorder
	loConfig string
	loRad    float64
	loNSeg   int
	loMesh   int
	loStride int
	loFolder string
)

func main() {
	log.SetFlags(0)
	rootCmd := &cobra.Command{
		Use:   "alens",
		Short: "analysis of aLENS chromatin simulations",
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&backendName, "backend", "serial", "compute backend: serial or pool")
	pf.IntVar(&workers, "workers", 0, "workers of the pool backend (0: one per CPU)")
	pf.StringVar(&plotFile, "plot", "", "also draw the result to this file (png, svg, pdf)")
	pf.BoolVar(&preview, "preview", false, "print a terminal preview of the result")
	pf.IntVar(&ssInd, "ss", 0, "first frame to analyze")

	contactCmd := &cobra.Command{
		Use:   "contact [file.h5]",
		Short: "time averaged contact matrix and contact kymograph",
		Args:  cobra.ExactArgs(1),
		RunE:  runContact,
	}
	contactCmd.Flags().Float64Var(&sigma, "sigma", contact.DefaultSigma, "width of the contact kernel")
	contactCmd.Flags().IntVar(&blockStep, "step", 1, "time stride")
	contactCmd.Flags().BoolVar(&logAvg, "log", true, "store the log of the average contact matrix")
	contactCmd.Flags().BoolVar(&useRadii, "radii", false, "measure contacts from the bead surfaces")

	kymoCmd := &cobra.Command{
		Use:   "kymo [file.h5]",
		Short: "position kymograph along the end to end axis",
		Args:  cobra.ExactArgs(1),
		RunE:  runKymo,
	}
	kymoCmd.Flags().IntVar(&bins, "bins", 100, "number of position bins")
	kymoCmd.Flags().IntVar(&tsEnd, "end", -1, "last frame (exclusive, -1 for all)")

	condCmd := &cobra.Command{
		Use:   "cond [file.h5]",
		Short: "condensate regions from the contact or position kymograph",
		Args:  cobra.ExactArgs(1),
		RunE:  runCond,
	}
	condCmd.Flags().Float64Var(&threshold, "threshold", .5, "kymograph threshold")
	condCmd.Flags().IntVar(&beadWin, "bead-win", 0, "smoothing window along beads or bins (0: none)")
	condCmd.Flags().IntVar(&timeWin, "time-win", 0, "smoothing window along time (0: none)")
	condCmd.Flags().BoolVar(&usePos, "pos", false, "use the position kymograph")
	condCmd.Flags().IntVar(&bins, "bins", 100, "number of position bins")
	condCmd.Flags().Float64Var(&sigma, "sigma", contact.DefaultSigma, "width of the contact kernel")

	overlapCmd := &cobra.Command{
		Use:   "overlap [file.h5]",
		Short: "number, mean and minimum of the bead overlaps per frame",
		Args:  cobra.ExactArgs(1),
		RunE:  runOverlap,
	}

	sephistCmd := &cobra.Command{
		Use:   "sephist [file.h5]",
		Short: "histograms of the pair separations per frame",
		Args:  cobra.ExactArgs(1),
		RunE:  runSepHist,
	}
	sephistCmd.Flags().IntVar(&bins, "bins", 100, "number of bins")

	msdCmd := &cobra.Command{
		Use:   "msd [file.h5]",
		Short: "bead mean squared displacement and polymer shape",
		Args:  cobra.ExactArgs(1),
		RunE:  runMSD,
	}

	autocorrCmd := &cobra.Command{
		Use:   "autocorr [file.h5]",
		Short: "polymer autocorrelation functions",
		Args:  cobra.ExactArgs(1),
		RunE:  runAutocorr,
	}
	autocorrCmd.Flags().StringVar(&kind, "kind", "pos", "pos, ang, dist or sep")
	autocorrCmd.Flags().BoolVar(&fast, "fast", true, "use the FFT estimators")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [file.h5]",
		Short: "power spectrum of the bead motion",
		Args:  cobra.ExactArgs(1),
		RunE:  runSpectrum,
	}
	spectrumCmd.Flags().StringVar(&kind, "kind", "pos", "pos, ang or dist")

	responseCmd := &cobra.Command{
		Use:   "response [file.h5]",
		Short: "imaginary and real response functions",
		Args:  cobra.ExactArgs(1),
		RunE:  runResponse,
	}

	energyCmd := &cobra.Command{
		Use:   "energy [file.h5]",
		Short: "energy of the links between consecutive beads",
		Args:  cobra.ExactArgs(1),
		RunE:  runEnergy,
	}

	connectCmd := &cobra.Command{
		Use:   "connect [file.h5]",
		Short: "crosslinker connectivity file next to the raw data",
		Args:  cobra.ExactArgs(1),
		RunE:  runConnect,
	}
	connectCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing connect file")
	connectCmd.Flags().IntVar(&tsEnd, "end", -1, "last frame (exclusive, -1 for all)")

	localorderCmd := &cobra.Command{
		Use:   "localorder [pattern]",
		Short: "local order on a spherical shell, one VTU file per snapshot",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLocalOrder,
	}
	lf := localorderCmd.Flags()
	lf.StringVar(&loConfig, "config", "RunConfig.yaml", "simulation configuration with the boundaries")
	lf.Float64Var(&loRad, "rad", localorder.DefaultRad, "radius of the sampling balls")
	lf.IntVar(&loNSeg, "nseg", localorder.DefaultNSeg, "segments per filament")
	lf.IntVar(&loMesh, "mesh", localorder.DefaultMesh, "order of the spherical mesh")
	lf.IntVar(&loStride, "stride", localorder.DefaultStride, "snapshot stride")
	lf.StringVar(&loFolder, "folder", localorder.DefaultFolder, "output folder")

	rootCmd.AddCommand(contactCmd, kymoCmd, condCmd, overlapCmd, sephistCmd, msdCmd,
		autocorrCmd, spectrumCmd, responseCmd, energyCmd, connectCmd, localorderCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// session is an open raw data file and the sink where results go.
type session struct {
	file  *h5.File
	group *h5.Group
	sink  *alens.Provenance
	be    alens.Backend
}

func openSession(path string) (*session, error) {
	be, err := alens.BackendByName(backendName, workers)
	if err != nil {
		return nil, err
	}
	f, err := h5.Open(path, true)
	if err != nil {
		return nil, err
	}
	if _, err := f.RunConfig(); err != nil {
		f.Close()
		return nil, err
	}
	g, err := f.Analysis()
	if err != nil {
		f.Close()
		return nil, err
	}
	s := &session{file: f, group: g, sink: alens.WithProvenance(g), be: be}
	log.Printf("%s: analysis %s", filepath.Base(path), s.sink.ID)
	return s, nil
}

func (s *session) Close() {
	s.group.Close()
	s.file.Close()
}

// trajectory returns the bead trajectory from frame ssInd on.
func (s *session) trajectory() (*alens.Trajectory, error) {
	sy, err := s.file.Sylinders()
	if err != nil {
		return nil, err
	}
	time, err := s.file.Time()
	if err != nil {
		return nil, err
	}
	traj, err := alens.FromSylinders(sy, time)
	if err != nil {
		return nil, err
	}
	if ssInd >= traj.Len() {
		return nil, fmt.Errorf("start frame %d beyond the %d frames", ssInd, traj.Len())
	}
	return traj.Window(ssInd, traj.Len()), nil
}

// write stores a 1D result with the common attributes.
func (s *session) write(name string, data []float64, attrs alens.Attrs) error {
	if attrs == nil {
		attrs = alens.Attrs{}
	}
	attrs["ss_ind"] = ssInd
	return s.sink.WriteDataset(name, data, []int{len(data)}, attrs)
}

// show prints a terminal preview of data when requested.
func show(data []float64, caption string) {
	if !preview || len(data) == 0 {
		return
	}
	clean := make([]float64, 0, len(data))
	for _, v := range data {
		if v == v {
			clean = append(clean, v)
		}
	}
	if len(clean) == 0 {
		return
	}
	graph := asciigraph.Plot(clean,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption))
	fmt.Fprintln(os.Stdout, graph)
}

// timeStep returns the spacing of the first two times, or 1.
func timeStep(time []float64) float64 {
	if len(time) < 2 || time[1] == time[0] {
		return 1
	}
	return time[1] - time[0]
}
