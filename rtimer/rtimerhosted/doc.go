// Package rtimerhosted is the hosted backend for rtimer.Controller: a
// dedicated goroutine standing in for the original's single hardware
// timer interrupt, driven by time.AfterFunc, with its monotonic clock
// read via golang.org/x/sys/unix's CLOCK_MONOTONIC - the direct
// analogue of project/source/myos/arch/stm32_hal/rtimer_arch.c's
// setitimer(ITIMER_REAL, ...) arming and arch/linux/rtimer_arch.h's
// rtimer_arch_now.
package rtimerhosted
