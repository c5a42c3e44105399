// Command calculator evaluates expressions, samples curves for
// plotting, and computes credit schedules from the command line.
//
// With no flags, each argument is evaluated as an expression of x:
//
//	calculator -x 2 "sin(x)^2" "1/(x-1)"
//
// With -graph, each argument is sampled across the requested window and
// printed as tab-separated x, y pairs. With -credit, the positional
// arguments are ignored and a loan schedule is printed instead. If no
// arguments are given, expressions are read from standard input, one
// per line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kostyandriy/Calculator-app-MVC-sub001/internal/calc"
	"github.com/kostyandriy/Calculator-app-MVC-sub001/internal/controller"
	"github.com/kostyandriy/Calculator-app-MVC-sub001/internal/credit"
	"github.com/kostyandriy/Calculator-app-MVC-sub001/internal/graph"
)

func main() {
	log.SetFlags(0)
	var (
		x float64

		graphMode bool
		ax        graph.Axes
		samples   int

		creditMode bool
		diff       bool
		principal  float64
		rate       float64
		months     int
	)
	flag.Float64Var(&x, "x", 0, "value substituted for the variable x")
	flag.BoolVar(&graphMode, "graph", false, "sample each expression over the window instead of evaluating once")
	flag.Float64Var(&ax.XMin, "from", -10, "left edge of the x range")
	flag.Float64Var(&ax.XMax, "to", 10, "right edge of the x range")
	flag.Float64Var(&ax.YMin, "ymin", -10, "bottom edge of the y range")
	flag.Float64Var(&ax.YMax, "ymax", 10, "top edge of the y range")
	flag.IntVar(&samples, "samples", 401, "number of sample points across the x range")
	flag.BoolVar(&creditMode, "credit", false, "compute a credit schedule instead of evaluating expressions")
	flag.BoolVar(&diff, "diff", false, "use a differentiated schedule rather than annuity")
	flag.Float64Var(&principal, "principal", 0, "loan principal")
	flag.Float64Var(&rate, "rate", 0, "annual interest rate in percent")
	flag.IntVar(&months, "months", 0, "loan term in months")
	flag.Parse()

	if creditMode {
		runCredit(diff, principal, rate, months)
		return
	}

	exprs := flag.Args()
	if len(exprs) == 0 {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			exprs = append(exprs, sc.Text())
		}
		if err := sc.Err(); err != nil {
			log.Fatal(err)
		}
	}

	if graphMode {
		for _, e := range exprs {
			pts, err := graph.Sample(e, ax, samples)
			if err != nil {
				log.Fatalf("%s: %v", e, err)
			}
			printPoints(pts)
		}
		return
	}
	for _, e := range exprs {
		fmt.Println(controller.Calculate(e, x))
	}
}

func printPoints(pts []calc.Point) {
	for _, p := range pts {
		fmt.Printf("%g\t%g\n", p.X, p.Y)
	}
}

func runCredit(diff bool, principal, rate float64, months int) {
	if diff {
		s, err := credit.DifferentiatedSchedule(principal, rate, months)
		if err != nil {
			log.Fatal(err)
		}
		for m, p := range s.Payments {
			fmt.Printf("month %d: %s\n", m+1, controller.Format(p))
		}
		fmt.Printf("total: %s\noverpayment: %s\n", controller.Format(s.Total), controller.Format(s.Overpay))
		return
	}
	s, err := credit.AnnuitySchedule(principal, rate, months)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("monthly: %s\ntotal: %s\noverpayment: %s\n",
		controller.Format(s.Monthly), controller.Format(s.Total), controller.Format(s.Overpay))
}
